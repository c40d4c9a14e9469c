package watchlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrSessionClosed marks use of a reorder session after it was committed or
// cancelled. Like a double BeginReorder, this is a caller bug, not a runtime
// condition.
var ErrSessionClosed = errors.New("reorder session is no longer active")

// SessionState tracks where a reorder session is in its lifecycle.
type SessionState string

const (
	StateDragging  SessionState = "dragging"
	StateCommitted SessionState = "committed"
	StateCancelled SessionState = "cancelled"
)

// Session is one in-progress manual reorder: picked item, working order, and
// a commit/cancel outcome. At most one session per store is active; the
// store releases the slot when the session ends.
type Session struct {
	ID string

	store    *Store
	pickedID string
	working  []string
	state    SessionState
}

// BeginReorder starts a reorder session for the item with pickedID,
// capturing a working copy of the current persisted order. Beginning while
// another session is active is an invalid-state error.
func (s *Store) BeginReorder(ctx context.Context, pickedID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active != nil {
		return nil, ErrReorderActive
	}

	items := s.load(ctx)
	working := make([]string, 0, len(items))
	found := false
	for _, item := range items {
		working = append(working, item.ID)
		if item.ID == pickedID {
			found = true
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, pickedID)
	}

	session := &Session{
		ID:       uuid.NewString(),
		store:    s,
		pickedID: pickedID,
		working:  working,
		state:    StateDragging,
	}
	s.active = session
	return session, nil
}

// ActiveSession returns the in-flight reorder session, or nil.
func (s *Store) ActiveSession() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// State reports the session's lifecycle state.
func (sess *Session) State() SessionState {
	sess.store.mu.Lock()
	defer sess.store.mu.Unlock()
	return sess.state
}

// PickedID returns the ID of the item being dragged.
func (sess *Session) PickedID() string {
	return sess.pickedID
}

// WorkingOrder returns a copy of the session's current working order.
func (sess *Session) WorkingOrder() []string {
	sess.store.mu.Lock()
	defer sess.store.mu.Unlock()
	return append([]string(nil), sess.working...)
}

// MoveOver recomputes the working order by removing the picked item and
// reinserting it at position. Positions outside the list clamp to its ends.
// Nothing outside the working order is touched.
func (sess *Session) MoveOver(position int) error {
	sess.store.mu.Lock()
	defer sess.store.mu.Unlock()

	if sess.state != StateDragging {
		return ErrSessionClosed
	}

	without := make([]string, 0, len(sess.working))
	for _, id := range sess.working {
		if id != sess.pickedID {
			without = append(without, id)
		}
	}

	if position < 0 {
		position = 0
	}
	if position > len(without) {
		position = len(without)
	}

	next := make([]string, 0, len(without)+1)
	next = append(next, without[:position]...)
	next = append(next, sess.pickedID)
	next = append(next, without[position:]...)
	sess.working = next
	return nil
}

// Commit writes the working order back to the store and ends the session.
func (sess *Session) Commit(ctx context.Context) error {
	sess.store.mu.Lock()
	defer sess.store.mu.Unlock()

	if sess.state != StateDragging {
		return ErrSessionClosed
	}

	if err := sess.store.reorderLocked(ctx, sess.working); err != nil {
		return err
	}

	sess.state = StateCommitted
	sess.store.active = nil
	sess.store.logger.Info().Str("id", sess.pickedID).Msg("Committed reorder")
	return nil
}

// Cancel discards the working order and ends the session. The persisted
// watchlist is untouched.
func (sess *Session) Cancel() error {
	sess.store.mu.Lock()
	defer sess.store.mu.Unlock()

	if sess.state != StateDragging {
		return ErrSessionClosed
	}

	sess.state = StateCancelled
	sess.store.active = nil
	return nil
}

// InsertionIndex resolves a pointer position against drop-zone centers (one
// per item excluding the dragged one, listed top to bottom). The target is
// the first zone whose center lies below the pointer; when the pointer is
// past every center the item is appended.
func InsertionIndex(centers []float64, pointerY float64) int {
	for idx, center := range centers {
		if pointerY < center {
			return idx
		}
	}
	return len(centers)
}
