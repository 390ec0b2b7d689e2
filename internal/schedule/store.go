package schedule

import "github.com/equinoterapia/clinica-api/internal/models"

// Store owns the ordered in-memory session collection. Mutations are
// copy-on-write: each one builds a fresh slice and swaps it in, so a
// snapshot handed out earlier stays valid while a projection walks it.
// The store itself is not goroutine-safe; the owning service serialises
// access.
type Store struct {
	sessions []models.Session
}

// NewStore copies the initial sessions into a fresh store.
func NewStore(initial []models.Session) *Store {
	sessions := make([]models.Session, len(initial))
	copy(sessions, initial)
	return &Store{sessions: sessions}
}

// Sessions returns the current snapshot. Callers must treat it as
// read-only; mutations never touch a published slice.
func (s *Store) Sessions() []models.Session {
	return s.sessions
}

// Len reports the number of stored sessions.
func (s *Store) Len() int {
	return len(s.sessions)
}

// NextID assigns identities as max(existing ids)+1, or 1 for an empty
// store. Max-based, not count-based: deleting sessions never frees ids for
// reuse within a snapshot's lifetime.
func (s *Store) NextID() int {
	return NextID(s.sessions)
}

// NextID is the package-level id rule shared with the factory and batch
// paths, which work on raw snapshots.
func NextID(sessions []models.Session) int {
	next := 1
	for _, sess := range sessions {
		if sess.ID >= next {
			next = sess.ID + 1
		}
	}
	return next
}

// Append adds a session to a fresh copy of the collection.
func (s *Store) Append(sess models.Session) {
	next := make([]models.Session, 0, len(s.sessions)+1)
	next = append(next, s.sessions...)
	next = append(next, sess)
	s.sessions = next
}

// Replace swaps the session with the given id, preserving order. It
// reports whether the id was found.
func (s *Store) Replace(id int, sess models.Session) bool {
	found := false
	next := make([]models.Session, len(s.sessions))
	for i, existing := range s.sessions {
		if existing.ID == id {
			next[i] = sess
			found = true
			continue
		}
		next[i] = existing
	}
	if !found {
		return false
	}
	s.sessions = next
	return true
}

// Remove deletes the session with the given id. It reports whether the id
// was found.
func (s *Store) Remove(id int) bool {
	found := false
	next := make([]models.Session, 0, len(s.sessions))
	for _, existing := range s.sessions {
		if existing.ID == id {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		return false
	}
	s.sessions = next
	return true
}

// Find returns the stored session with the given id.
func (s *Store) Find(id int) (models.Session, bool) {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess, true
		}
	}
	return models.Session{}, false
}
