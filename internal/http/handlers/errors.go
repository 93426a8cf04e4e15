// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes symbolic error code constants mapped to HTTP responses
// via the `fail()` helper. The codes give clients a stable, machine-readable
// error taxonomy that supplements human-readable messages.
//
// Conventions:
//   - Codes are lowercase snake_case.
//   - Generic codes (bad_request, not_found, conflict) mirror common HTTP
//     status semantics.
//   - Domain-specific codes (suggest_failed, chat_failed, order_failed) are
//     reserved for business logic errors that status alone cannot convey.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeSuggestFailed    = "suggest_failed"
	ErrCodeFilterFailed     = "filter_failed"
	ErrCodeChatFailed       = "chat_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeOrderFailed      = "order_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
