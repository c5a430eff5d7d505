// Package session is the local identity stub. There is no backend and no
// credential check beyond input shape; the record only labels the session and
// gates a couple of UI niceties.
package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/taskflowhq/taskflow/internal/model"
	"github.com/taskflowhq/taskflow/internal/storage"
)

const (
	loggedInKey   = "taskflow_logged_in"
	userKey       = "taskflow_user"
	firstVisitKey = "taskflow_first_visit"
)

type Manager struct {
	shim  *storage.Shim
	now   func() time.Time
	newID func() string
	user  *model.User
}

func NewManager(shim *storage.Shim) *Manager {
	return NewManagerWithClock(shim, time.Now, uuid.NewString)
}

func NewManagerWithClock(shim *storage.Shim, now func() time.Time, newID func() string) *Manager {
	return &Manager{shim: shim, now: now, newID: newID}
}

// Load restores a previously persisted session, if any.
func (m *Manager) Load() {
	if m.shim.LoadString(loggedInKey, "") != "true" {
		return
	}
	var u model.User
	if m.shim.LoadJSON(userKey, &u) {
		m.user = &u
	}
}

func (m *Manager) LoggedIn() bool {
	return m.user != nil
}

// Current returns the active user, or nil when logged out.
func (m *Manager) Current() *model.User {
	return m.user
}

// Login accepts any email with a long-enough password and derives the display
// name from the email's local part.
func (m *Manager) Login(email, password string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return model.User{}, &model.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if len(password) < 6 {
		return model.User{}, &model.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	return m.start(name, email), nil
}

// Register validates the form fields and starts a session with the given
// name.
func (m *Manager) Register(name, email, password, confirm string) (model.User, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return model.User{}, &model.ValidationError{Field: "name", Reason: "must be at least 2 characters"}
	}
	if password != confirm {
		return model.User{}, &model.ValidationError{Field: "password", Reason: "passwords do not match"}
	}
	if len(password) < 6 {
		return model.User{}, &model.ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return m.start(name, strings.ToLower(strings.TrimSpace(email))), nil
}

func (m *Manager) start(name, email string) model.User {
	user := model.User{
		ID:        m.newID(),
		Name:      name,
		Email:     email,
		LoginTime: m.now(),
	}
	m.user = &user
	m.shim.SaveString(loggedInKey, "true")
	m.shim.SaveJSON(userKey, user)
	return user
}

// Logout forgets the session in memory and in the store.
func (m *Manager) Logout() {
	m.user = nil
	m.shim.Remove(loggedInKey)
	m.shim.Remove(userKey)
}

// FirstVisit reports whether this is the first run against this store, and
// burns the sentinel so the welcome is only ever shown once.
func (m *Manager) FirstVisit() bool {
	if m.shim.LoadString(firstVisitKey, "") != "" {
		return false
	}
	m.shim.SaveString(firstVisitKey, "true")
	return true
}
