package domain

import "time"

// Notification is a short confirmation message shown to a user once.
type Notification struct {
	ID        string    `json:"id"`
	Recipient string    `json:"-"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
