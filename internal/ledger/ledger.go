// Package ledger owns the active session's payment records: an append-only,
// most-recent-first sequence persisted as a single JSON blob.
package ledger

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/civicpay/civicpay/internal/common"
	"github.com/civicpay/civicpay/internal/logging"
	"github.com/civicpay/civicpay/internal/models"
	"github.com/civicpay/civicpay/internal/storage"
)

// Session is the narrow view of the auth session the ledger needs.
type Session interface {
	CurrentUser() *models.User
}

// Draft carries the fields collected by the payment form. The remaining
// Payment fields (id, transactionId, userId, status, createdAt) are generated
// on append.
type Draft struct {
	PropertyID string
	Type       models.PaymentType
	Amount     float64
	Period     string
	Notes      string
	Method     models.PaymentMethod
}

// Manager holds the in-memory payment list for the active session.
// Mutating operations are serialized by an internal mutex.
type Manager struct {
	mu       sync.Mutex
	store    storage.Store
	log      logging.Logger
	session  Session
	payments []models.Payment
	loading  bool
}

func NewManager(store storage.Store, session Session, log logging.Logger) *Manager {
	return &Manager{store: store, session: session, log: log.With("component", "ledger"), loading: true}
}

// Load refreshes the in-memory list from the store. When no session is
// active the list is cleared and nothing is read. Store read errors are
// logged and leave the list empty.
func (m *Manager) Load(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.loading = false }()

	if m.session.CurrentUser() == nil {
		m.payments = nil
		return
	}

	blob, err := m.store.Get(ctx, storage.KeyPayments)
	if err != nil {
		m.log.Error(ctx, "error loading payments", "error", err)
		m.payments = nil
		return
	}
	payments, err := models.DecodePayments(blob)
	if err != nil {
		m.log.Error(ctx, "error decoding stored payments", "error", err)
		m.payments = nil
		return
	}
	m.payments = payments
}

// Append builds a full Payment from draft, persists it at the head of the
// stored sequence, prepends it in memory, and returns it.
//
// Preconditions are checked before anything is written: an active session
// must exist, the amount must be positive, and the type/method must be known
// values. The in-memory list is only updated after the store write succeeds.
func (m *Manager) Append(ctx context.Context, draft Draft) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.session.CurrentUser()
	if user == nil {
		return nil, common.ErrorNoActiveSession
	}
	if draft.Amount <= 0 {
		return nil, common.ErrorInvalidAmount
	}
	if !draft.Type.Valid() {
		return nil, common.ErrorInvalidPaymentType
	}
	if !draft.Method.Valid() {
		return nil, common.ErrorUnknownPaymentMethod
	}

	now := time.Now().UTC()
	txID, err := models.NewTransactionID(now)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		ID:            models.NewID(),
		UserID:        user.ID,
		PropertyID:    draft.PropertyID,
		Type:          draft.Type,
		Amount:        draft.Amount,
		Period:        draft.Period,
		Notes:         draft.Notes,
		Status:        models.PaymentStatusCompleted,
		TransactionID: txID,
		PaymentMethod: draft.Method,
		CreatedAt:     now,
	}

	next := make([]models.Payment, 0, len(m.payments)+1)
	next = append(next, payment)
	next = append(next, m.payments...)

	blob, err := models.EncodePayments(next)
	if err != nil {
		return nil, err
	}
	if err := m.store.Set(ctx, storage.KeyPayments, blob); err != nil {
		return nil, fmt.Errorf("failed to persist payment: %w", err)
	}

	m.payments = next
	return &payment, nil
}

// All returns a copy of the full sequence, most-recent-first.
func (m *Manager) All() []models.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Payment, len(m.payments))
	copy(out, m.payments)
	return out
}

// ByType returns the subsequence with the given type, preserving order.
func (m *Manager) ByType(t models.PaymentType) []models.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Payment, 0)
	for _, p := range m.payments {
		if p.Type == t {
			out = append(out, p)
		}
	}
	return out
}

// Recent returns the first n entries (the list is most-recent-first).
// Non-positive n defaults to 3.
func (m *Manager) Recent(n int) []models.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n <= 0 {
		n = 3
	}
	if n > len(m.payments) {
		n = len(m.payments)
	}
	out := make([]models.Payment, n)
	copy(out, m.payments[:n])
	return out
}

// PendingTotal always returns zero: no pending-state transitions exist in the
// current flow, so nothing can accumulate.
func (m *Manager) PendingTotal() float64 {
	return 0
}

// FindByTransactionID returns the payment with the given receipt reference,
// or common.ErrorNotFound.
func (m *Manager) FindByTransactionID(txID string) (*models.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.payments {
		if p.TransactionID == txID {
			found := p
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

// Loading reports whether the first Load has not finished yet.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}
