// Package session owns the device's single authenticated user: loading it at
// start, registration, login/logout, and profile updates.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/logging"
	"github.com/civicpay/civicpay/internal/models"
	"github.com/civicpay/civicpay/internal/storage"
)

// RegisterParams carries the profile fields collected at registration.
// ID and CreatedAt are generated by the manager.
type RegisterParams struct {
	FullName     string
	Email        string
	Phone        string
	PropertyID   string
	Address      string
	ProfileImage *string
}

// UserUpdate is a partial profile update. Nil fields are left unchanged.
// ID and CreatedAt are not updatable.
type UserUpdate struct {
	FullName     *string
	Email        *string
	Phone        *string
	PropertyID   *string
	Address      *string
	ProfileImage *string
}

// Manager holds the current session and persists it through the store.
//
// All mutating operations are serialized by an internal mutex, so two
// overlapping UpdateUser calls cannot race on the read-modify-write of the
// stored user record.
type Manager struct {
	mu      sync.Mutex
	store   storage.Store
	log     logging.Logger
	current *models.User
	loading bool
}

// NewManager returns a Manager in the loading state; call Initialize once at
// process start to load any persisted session.
func NewManager(store storage.Store, log logging.Logger) *Manager {
	return &Manager{store: store, log: log.With("component", "session"), loading: true}
}

// Initialize loads the persisted user, if any, into memory. Store read errors
// are logged and leave the session empty; they are never propagated.
func (m *Manager) Initialize(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.loading = false }()

	blob, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil {
		m.log.Error(ctx, "error loading user", "error", err)
		return
	}
	user, err := models.DecodeUser(blob)
	if err != nil {
		m.log.Error(ctx, "error decoding stored user", "error", err)
		return
	}
	m.current = user
}

// Login restores the persisted session when email matches the stored user's
// email case-insensitively. The password argument is accepted but not
// verified: the device holds no credential to verify it against. Returns
// false when no user is registered, the email does not match, or the store
// read fails (logged).
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	_ = password

	m.mu.Lock()
	defer m.mu.Unlock()

	blob, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil {
		m.log.Error(ctx, "error reading user during login", "error", err)
		return false
	}
	user, err := models.DecodeUser(blob)
	if err != nil {
		m.log.Error(ctx, "error decoding user during login", "error", err)
		return false
	}
	if user == nil || !strings.EqualFold(user.Email, email) {
		return false
	}

	m.issueToken(ctx)
	m.current = user
	return true
}

// Register creates a new user with a fresh id and timestamp, persists it
// (overwriting any prior user, since a device holds one account), issues a fresh
// token, and activates the session. It fails only when the store write fails
// or the email is empty.
func (m *Manager) Register(ctx context.Context, params RegisterParams) (*models.User, error) {
	if strings.TrimSpace(params.Email) == "" {
		return nil, common.ErrorEmailRequired
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := &models.User{
		ID:           models.NewID(),
		FullName:     params.FullName,
		Email:        params.Email,
		Phone:        params.Phone,
		PropertyID:   params.PropertyID,
		Address:      params.Address,
		CreatedAt:    time.Now().UTC(),
		ProfileImage: params.ProfileImage,
	}

	blob, err := models.EncodeUser(user)
	if err != nil {
		return nil, err
	}
	if err := m.store.Set(ctx, storage.KeyUser, blob); err != nil {
		return nil, fmt.Errorf("failed to persist user: %w", err)
	}

	m.issueToken(ctx)
	m.current = user
	return user.Clone(), nil
}

// Logout clears the user, payments and token records from the store and
// resets the in-memory session. The in-memory session is reset even when the
// store operation fails.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = nil

	err := m.store.RemoveMany(ctx, storage.KeyUser, storage.KeyPayments, storage.KeyAuthToken)
	if err != nil {
		return fmt.Errorf("failed to clear session records: %w", err)
	}
	return nil
}

// UpdateUser merges the non-nil fields of upd into the current user,
// persists the result, and updates the in-memory copy. ID and CreatedAt are
// never altered. Returns common.ErrorNoActiveSession when nobody is logged
// in.
func (m *Manager) UpdateUser(ctx context.Context, upd UserUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return nil, common.ErrorNoActiveSession
	}

	updated := m.current.Clone()
	if upd.FullName != nil {
		updated.FullName = *upd.FullName
	}
	if upd.Email != nil {
		updated.Email = *upd.Email
	}
	if upd.Phone != nil {
		updated.Phone = *upd.Phone
	}
	if upd.PropertyID != nil {
		updated.PropertyID = *upd.PropertyID
	}
	if upd.ProfileImage != nil {
		img := *upd.ProfileImage
		updated.ProfileImage = &img
	}
	if upd.Address != nil {
		updated.Address = *upd.Address
	}

	blob, err := models.EncodeUser(updated)
	if err != nil {
		return nil, err
	}
	if err := m.store.Set(ctx, storage.KeyUser, blob); err != nil {
		return nil, fmt.Errorf("failed to persist user update: %w", err)
	}

	m.current = updated
	return updated.Clone(), nil
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.Clone()
}

// IsAuthenticated reports whether a session is active.
func (m *Manager) IsAuthenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}

// Loading reports whether Initialize has not finished yet.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// issueToken writes a fresh opaque session marker. Token write failures are
// logged only: the token carries no identity claim, so the session stays
// usable without it. Callers must hold m.mu.
func (m *Manager) issueToken(ctx context.Context) {
	token, err := models.NewAuthToken(time.Now())
	if err != nil {
		m.log.Warn(ctx, "error generating auth token", "error", err)
		return
	}
	if err := m.store.Set(ctx, storage.KeyAuthToken, []byte(token)); err != nil {
		m.log.Warn(ctx, "error persisting auth token", "error", err)
	}
}
