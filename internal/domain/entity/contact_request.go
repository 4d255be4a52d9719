package entity

import "time"

// ContactRequest is one visitor form submission, owned by the admin inbox.
// It is mutable only through the Read toggle and deletable by the admin.
type ContactRequest struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Subject   string    `json:"subject,omitempty" firestore:"subject,omitempty"`
	Message   string    `json:"message" firestore:"message"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp"`
	Read      bool      `json:"read" firestore:"read"`
}
