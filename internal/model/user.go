package model

import "time"

// Profiles (role tags).
const (
	ProfileUser  = "user"
	ProfileAdmin = "admin"
)

// User represents a registered account.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // never serialized
	Profile      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
