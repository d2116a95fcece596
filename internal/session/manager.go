package session

import (
	"fmt"
	"log"
	"sync"
	"time"

	"radsafe/internal/models"
	"radsafe/internal/security"
)

const avatarURIFormat = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s"

// UserStore is the slice of the persisted store the manager writes through.
type UserStore interface {
	LoadUsers() []models.UserRecord
	SaveUsers(users []models.UserRecord) error
	LoadSessionUser() *models.UserRecord
	SaveSessionUser(user models.UserRecord) error
	RemoveSessionUser() error
	LoadLastEmail() string
	SaveLastEmail(email string) error
}

// Mirror receives best-effort copies of signups and profile updates.
// Failures are logged and never block or roll back the local write.
type Mirror interface {
	MirrorProfile(user models.UserRecord) error
	MirrorRegistration(user models.UserRecord) error
}

// ProfileUpdate carries the fields a profile edit may change. Nil means
// "leave as is".
type ProfileUpdate struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	ProfilePhoto *string `json:"profilePhoto"`
	Phone        *string `json:"phone"`
}

// Manager owns the authenticated-user state for the running service and
// keeps it synchronized with the persisted store.
type Manager struct {
	mu      sync.Mutex
	store   UserStore
	mirror  Mirror
	current *models.UserRecord
}

// NewManager builds a manager and restores any persisted session, so a
// restart lands the user back in the logged-in state without re-validating
// credentials.
func NewManager(store UserStore, mirror Mirror) *Manager {
	manager := &Manager{store: store, mirror: mirror}
	manager.RestoreSession()
	return manager
}

// RestoreSession loads the persisted session user, if any. Malformed or
// absent data leaves the manager logged out.
func (manager *Manager) RestoreSession() {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.current = manager.store.LoadSessionUser()
}

// Current reports the session state with a password-free user projection.
func (manager *Manager) Current() models.SessionState {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	return manager.stateLocked()
}

func (manager *Manager) stateLocked() models.SessionState {
	state := models.SessionState{LastEmail: manager.store.LoadLastEmail()}
	if manager.current != nil {
		projection := manager.current.Projection()
		state.Authenticated = true
		state.CurrentUser = &projection
	}
	return state
}

// Login matches credentials byte-exactly against the registered table. A
// failed attempt leaves the session state unchanged. When remember is set
// the submitted email is persisted for auth-screen auto-fill regardless of
// the outcome.
func (manager *Manager) Login(email string, password string, remember bool) (models.SessionState, error) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if remember && email != "" {
		if err := manager.store.SaveLastEmail(email); err != nil {
			log.Printf("persist last email failed: %v", err)
		}
	}

	if email == "" || password == "" {
		return manager.stateLocked(), ErrMissingField
	}

	for _, user := range manager.store.LoadUsers() {
		if user.Email == email && user.Password == password {
			matched := user.Projection()
			manager.current = &matched
			if err := manager.store.SaveSessionUser(matched); err != nil {
				log.Printf("persist session failed: %v", err)
			}
			return manager.stateLocked(), nil
		}
	}

	return manager.stateLocked(), ErrInvalidCredentials
}

// Signup appends a new record to the registered table and logs it in. The
// table is never modified when the email is already taken.
func (manager *Manager) Signup(name string, email string, password string) (models.SessionState, error) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if name == "" || email == "" || password == "" {
		return manager.stateLocked(), ErrMissingField
	}

	users := manager.store.LoadUsers()
	for _, user := range users {
		if user.Email == email {
			return manager.stateLocked(), ErrDuplicateEmail
		}
	}

	record := models.UserRecord{
		ID:           newUserID(),
		Name:         name,
		Email:        email,
		Password:     password,
		ProfilePhoto: fmt.Sprintf(avatarURIFormat, email),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}

	users = append(users, record)
	if err := manager.store.SaveUsers(users); err != nil {
		return manager.stateLocked(), err
	}

	projection := record.Projection()
	manager.current = &projection
	if err := manager.store.SaveSessionUser(projection); err != nil {
		log.Printf("persist session failed: %v", err)
	}

	if manager.mirror != nil {
		go func() {
			if err := manager.mirror.MirrorRegistration(record); err != nil {
				log.Printf("registration mirror skipped: %v", err)
			}
		}()
	}

	return manager.stateLocked(), nil
}

// Logout clears the session and its persisted key. The registered table is
// untouched.
func (manager *Manager) Logout() {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	manager.current = nil
	if err := manager.store.RemoveSessionUser(); err != nil {
		log.Printf("remove persisted session failed: %v", err)
	}
}

// UpdateProfile merges the given fields into the current user and persists
// the merged record under the session key only; the registered table keeps
// the signup-time copy. The remote mirror runs in the background and its
// result is only observed for logging.
func (manager *Manager) UpdateProfile(update ProfileUpdate) (models.SessionState, error) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if manager.current == nil {
		return manager.stateLocked(), ErrNotAuthenticated
	}

	merged := *manager.current
	if update.Name != nil {
		merged.Name = *update.Name
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.ProfilePhoto != nil {
		merged.ProfilePhoto = *update.ProfilePhoto
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	merged.UpdatedAt = time.Now()

	if err := manager.store.SaveSessionUser(merged); err != nil {
		return manager.stateLocked(), err
	}
	manager.current = &merged

	if manager.mirror != nil {
		mirrored := merged
		go func() {
			if err := manager.mirror.MirrorProfile(mirrored); err != nil {
				log.Printf("profile mirror skipped: %v", err)
			}
		}()
	}

	return manager.stateLocked(), nil
}

// ApplyRemoteProfile overwrites name and profile photo from a remote copy,
// the only fields the reconciliation flow may touch. Email is never
// overwritten here. Returns whether anything changed.
func (manager *Manager) ApplyRemoteProfile(name string, profilePhoto string) bool {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if manager.current == nil {
		return false
	}

	changed := false
	merged := *manager.current
	if name != "" && name != merged.Name {
		merged.Name = name
		changed = true
	}
	if profilePhoto != "" && profilePhoto != merged.ProfilePhoto {
		merged.ProfilePhoto = profilePhoto
		changed = true
	}
	if !changed {
		return false
	}

	manager.current = &merged
	if err := manager.store.SaveSessionUser(merged); err != nil {
		log.Printf("persist reconciled session failed: %v", err)
	}
	return true
}

// LookupUser resolves a registered record by id, used when re-establishing
// a session from an auth token.
func (manager *Manager) LookupUser(id string) (models.UserRecord, bool) {
	if id == "" {
		return models.UserRecord{}, false
	}
	for _, user := range manager.store.LoadUsers() {
		if user.ID == id {
			return user, true
		}
	}
	return models.UserRecord{}, false
}

// newUserID keeps the original time-derived id shape, with a short random
// suffix so two signups in the same millisecond cannot collide.
func newUserID() string {
	suffix, err := security.RandomString(4, security.IDAlphabet)
	if err != nil {
		suffix = "0000"
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}
