package entity

import "time"

// AdminCredential is the stored login record for the site owner. The
// password never leaves the credential store in plaintext; only the bcrypt
// hash is persisted.
type AdminCredential struct {
	Email        string    `json:"email" firestore:"email"`
	PasswordHash string    `json:"passwordHash" firestore:"passwordHash"`
	UpdatedAt    time.Time `json:"updatedAt" firestore:"updatedAt"`
}
