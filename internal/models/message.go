package models

import "time"

// Message is a direct message between two users.
type Message struct {
	ID         string    `db:"id" json:"id"`
	SenderID   string    `db:"sender_id" json:"sender_id"`
	ReceiverID string    `db:"receiver_id" json:"receiver_id"`
	Body       string    `db:"body" json:"message"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
