package entity

import "time"

// Note is an admin self-note. Unlike ContactRequest it has no read state:
// notes are created and deleted by the admin, never mutated.
type Note struct {
	ID        string    `json:"id" firestore:"-"`
	Message   string    `json:"message" firestore:"message"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
}
