package model

import "sync"

// Input names the free-text field the next text reply fills.
type Input int

const (
	InputNone Input = iota
	InputName
	InputPhone
	InputEmail
	InputPerimeter
)

// Session is the per-chat wizard state. Mutate it only while holding Lock.
type Session struct {
	sync.Mutex

	ChatID    int64
	MessageID int // live wizard message, 0 until sent
	Username  string

	Form     FormState
	Awaiting Input

	// LastLeadLink is the deep link most recently archived for this session.
	LastLeadLink string
}

func NewSession(chatID int64) *Session {
	return &Session{
		ChatID: chatID,
		Form:   NewFormState(),
	}
}

// Reset discards every selection and returns to the first step.
func (s *Session) Reset() {
	s.Form = NewFormState()
	s.Awaiting = InputNone
	s.LastLeadLink = ""
}
