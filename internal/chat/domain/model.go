package domain

// Message is one line of a visitor/admin conversation. Conversations live in
// memory only.
type Message struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	IsAdmin   bool   `json:"isAdmin"`
	Timestamp int64  `json:"timestamp"` // epoch milliseconds
}
