package service

import "fmt"

// Responder produces the admin's answer to a visitor message.
type Responder interface {
	Reply(visitor, adminName, text string) string
}

// CannedResponder always greets the visitor with the same line.
type CannedResponder struct{}

func (CannedResponder) Reply(visitor, _, _ string) string {
	return fmt.Sprintf("Hello %s! Thanks for contacting me. How can I help you with our source codes today?", visitor)
}
