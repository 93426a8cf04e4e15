// Package session implements the conversation session store: a keyed history
// of prior chat turns consulted and updated on every chatbot request.
//
// Two implementations are provided. MemoryStore is the default: an in-memory
// map with a per-session turn cap and time-based eviction, suitable for a
// single-process deployment. RedisStore keeps the same contract on Redis so
// horizontally scaled deployments share history; it relies on native key TTL
// and list trimming.
package session

import (
	"context"
	"time"
)

// Turn roles. Turns always alternate user/assistant and are appended in pairs.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is a single role-tagged utterance within a session.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store is the conversation session contract.
//
// History returns the ordered turns for id, oldest first; a session that has
// never been written yields an empty slice, never an error of the "not found"
// kind. Append pushes a user turn then an assistant turn as a pair, refreshes
// the session's activity time, and evicts oldest turns beyond the configured
// cap. Concurrent appends to the same id are last-write-wins; chat history is
// advisory, not transactional.
type Store interface {
	History(ctx context.Context, id string) ([]Turn, error)
	Append(ctx context.Context, id string, userTurn, assistantTurn Turn) error
}

// Defaults shared by both implementations.
const (
	// DefaultMaxTurns bounds per-session history (and downstream prompt size).
	DefaultMaxTurns = 20
	// DefaultTTL is how long an idle session survives before eviction.
	DefaultTTL = 30 * time.Minute
)
