package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// UserRecord is the registered-account row kept in the persisted store.
// Passwords are stored as entered: the table mirrors the original demo
// client's format, which keeps credentials in cleartext.
type UserRecord struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"password,omitempty"`
	ProfilePhoto string    `json:"profilePhoto,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// Projection returns the record without its password, the only shape that
// may leave the session layer.
func (user UserRecord) Projection() UserRecord {
	user.Password = ""
	return user
}

// SessionState is the logged-in view handed to the API layer.
type SessionState struct {
	Authenticated bool        `json:"authenticated"`
	CurrentUser   *UserRecord `json:"user,omitempty"`
	LastEmail     string      `json:"lastEmail,omitempty"`
}
