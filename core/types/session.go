package types

import "github.com/google/uuid"

// UserRef identifies the authenticated caller of a chat turn.
type UserRef struct {
	ID    uuid.UUID
	Email string
}

// SessionState is passed into every tool executor. Tools that require an
// authenticated caller check it instead of trusting the transport layer.
type SessionState struct {
	User *UserRef
}

func (s *SessionState) Authenticated() bool {
	return s != nil && s.User != nil
}
