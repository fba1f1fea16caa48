package chat

import "time"

// Answer is the outcome of one question sent to a persona. It is returned to
// the caller and never stored.
type Answer struct {
	ID        string    `json:"id"`
	PersonaID string    `json:"personaId"`
	Question  string    `json:"question"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
