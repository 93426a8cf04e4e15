// Package services defines the business logic for plant suggestions, garden
// advice, and the store. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Suggestion-related errors.
var (
	// ErrMissingField is returned when a suggestion request omits one of the
	// five required combination fields.
	ErrMissingField = errors.New("all growing-condition fields are required")

	// ErrCombinationNotFound indicates that neither the exact combination,
	// a partial fallback, nor the default suggestion set exists.
	ErrCombinationNotFound = errors.New("no suggestion set for this combination")

	// ErrMissingKeyword is returned when a plant filter request has an empty
	// keyword.
	ErrMissingKeyword = errors.New("keyword is required")
)

// Advice-related errors.
var (
	// ErrEmptyMessage is returned when a chat request contains a blank message.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrMessageTooLong is returned when a chat message exceeds the maximum
	// configured rune length.
	ErrMessageTooLong = errors.New("message too long")
)

// Store-related errors.
var (
	// ErrProductNotFound indicates that the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")

	// ErrOrderNotFound indicates that the requested order does not exist or
	// is not accessible to the current user.
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmptyCart is returned when a user attempts to place an order with an
	// empty cart.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCartItemNotFound indicates that the cart has no row for the product.
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrWishlistItemNotFound indicates that the wishlist has no row for the
	// product.
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
)
