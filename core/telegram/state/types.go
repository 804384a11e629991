// Package state provides a lightweight FSM/session manager for Telegram bots.
// Each user owns at most one session: a named state plus a typed draft the
// active flow accumulates. Sessions live in memory and die with the process.
package state

import tele "gopkg.in/telebot.v4"

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// Session stores conversation state and the in-progress draft for a user.
// Draft is a flow-specific struct (for example a product being composed);
// a flow never reads another flow's draft type.
type Session struct {
	State State
	Draft any
}

// Manager orchestrates user sessions and FSM state transitions.
type Manager interface {
	// SetState updates the FSM state for a user, creating the session lazily.
	SetState(userID int64, st State)
	// GetState returns the current FSM state of a user, or StateIdle.
	GetState(userID int64) State
	// InProgress reports whether the user currently has an active FSM state.
	InProgress(userID int64) bool

	// SetDraft stores the flow draft for a user, creating the session lazily.
	SetDraft(userID int64, draft any)
	// Draft returns the stored draft for a user, or nil.
	Draft(userID int64) any

	// Clear removes the entire session for a user.
	Clear(userID int64)

	// RegisterHandler associates a state with its input handler.
	RegisterHandler(st State, h tele.HandlerFunc)
	// Handle executes the handler registered for the user's current state, if any.
	Handle(c tele.Context) error
}

// DraftAs returns the user's draft asserted to T.
func DraftAs[T any](m Manager, userID int64) (T, bool) {
	var zero T
	d := m.Draft(userID)
	if d == nil {
		return zero, false
	}
	v, ok := d.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
