package store

import (
	"encoding/json"
	"strings"

	"radsafe/internal/models"
)

// Keys used by the session layer; names kept from the original client so an
// exported store stays recognizable.
const (
	KeyRegisteredUsers = "radsafe_users"
	KeySessionUser     = "radsafe_user"
	KeyLastEmail       = "radsafe_last_email"
)

// LoadUsers returns the registered-user table. Absent or malformed data
// yields an empty table: the auth flow fails open to logged-out, never to
// an error.
func (store *Store) LoadUsers() []models.UserRecord {
	raw, present, err := store.Get(KeyRegisteredUsers)
	if err != nil || !present {
		return []models.UserRecord{}
	}

	users := []models.UserRecord{}
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return []models.UserRecord{}
	}
	return users
}

func (store *Store) SaveUsers(users []models.UserRecord) error {
	serialized, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return store.Set(KeyRegisteredUsers, string(serialized))
}

// LoadSessionUser returns the persisted session record, or nil when no
// session exists or the stored value does not parse.
func (store *Store) LoadSessionUser() *models.UserRecord {
	raw, present, err := store.Get(KeySessionUser)
	if err != nil || !present || strings.TrimSpace(raw) == "" {
		return nil
	}

	user := models.UserRecord{}
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	if user.ID == "" && user.Email == "" {
		return nil
	}
	return &user
}

func (store *Store) SaveSessionUser(user models.UserRecord) error {
	serialized, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return store.Set(KeySessionUser, string(serialized))
}

func (store *Store) RemoveSessionUser() error {
	return store.Remove(KeySessionUser)
}

func (store *Store) LoadLastEmail() string {
	raw, present, err := store.Get(KeyLastEmail)
	if err != nil || !present {
		return ""
	}
	return strings.TrimSpace(raw)
}

func (store *Store) SaveLastEmail(email string) error {
	return store.Set(KeyLastEmail, strings.TrimSpace(email))
}
