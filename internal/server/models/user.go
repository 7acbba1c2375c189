// Package models defines the persistent server-side entities.
package models

import "time"

// User is a registered account. Email is stored lowercased and must be
// unique; PasswordHash is a bcrypt digest, the plaintext is never stored.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
