// Package manager holds the state of the payment-type admin screen: the loaded
// list, the search query and the "add" form. It talks to the backend through
// the Loader and Writer interfaces and reports outcomes through a Notifier.
package manager

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"carniceria-admin/services/admin-console/internal/models"
)

// Loader fetches the full collection. One attempt per call.
type Loader interface {
	List(ctx context.Context) ([]models.PaymentType, error)
}

// Writer creates one entry. One attempt per call.
type Writer interface {
	Create(ctx context.Context, payload models.CreateRequest) error
}

// SnapshotStore persists the last list fetched successfully.
type SnapshotStore interface {
	Save(list []models.PaymentType) error
	Load() ([]models.PaymentType, error)
}

type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
	ModalSubmitting
)

func (s ModalState) String() string {
	switch s {
	case ModalClosed:
		return "closed"
	case ModalOpen:
		return "open"
	case ModalSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("ModalState(%d)", int(s))
	}
}

// Manager is safe for concurrent use. The lock is never held during a network call.
type Manager struct {
	loader    Loader
	writer    Writer
	notifier  Notifier
	snapshots SnapshotStore
	logger    *zap.Logger

	mu     sync.RWMutex
	items  []models.PaymentType
	query  string
	modal  ModalState
	draft  string
	loaded bool
}

// Option configures optional collaborators.
type Option func(*Manager)

// WithSnapshots seeds the list from store when the first load fails and keeps
// it updated after every successful load.
func WithSnapshots(store SnapshotStore) Option {
	return func(m *Manager) { m.snapshots = store }
}

func New(loader Loader, writer Writer, notifier Notifier, logger *zap.Logger, opts ...Option) *Manager {
	m := &Manager{
		loader:   loader,
		writer:   writer,
		notifier: notifier,
		logger:   logger,
		items:    []models.PaymentType{},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mount performs the initial load. On failure the list falls back to the last
// snapshot if one is configured, otherwise it stays empty.
func (m *Manager) Mount(ctx context.Context) error {
	err := m.Refresh(ctx)
	if err == nil || m.snapshots == nil {
		return err
	}

	list, snapErr := m.snapshots.Load()
	if snapErr != nil {
		m.logger.Warn("failed to load snapshot", zap.Error(snapErr))
		return err
	}

	m.mu.Lock()
	if !m.loaded {
		m.items = list
	}
	m.mu.Unlock()

	m.logger.Info("using last known payment types", zap.Int("count", len(list)))
	return err
}

// Refresh replaces the list with a fresh fetch. On failure the current list is kept.
func (m *Manager) Refresh(ctx context.Context) error {
	list, err := m.loader.List(ctx)
	if err != nil {
		m.logger.Error("failed to load payment types", zap.Error(err))
		m.notifier.Error(MsgLoadFailed)
		return fmt.Errorf("%w: %w", ErrLoadFailure, err)
	}

	items := make([]models.PaymentType, len(list))
	copy(items, list)

	m.mu.Lock()
	m.items = items
	m.loaded = true
	m.mu.Unlock()

	if m.snapshots != nil {
		if err := m.snapshots.Save(items); err != nil {
			m.logger.Warn("failed to save snapshot", zap.Error(err))
		}
	}

	m.logger.Debug("payment types loaded", zap.Int("count", len(items)))
	return nil
}

// Items returns a copy of the loaded list.
func (m *Manager) Items() []models.PaymentType {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.PaymentType, len(m.items))
	copy(out, m.items)
	return out
}

// Visible returns the loaded list narrowed by the current query.
func (m *Manager) Visible() []models.PaymentType {
	m.mu.RLock()
	query := m.query
	m.mu.RUnlock()

	return Filter(m.Items(), query)
}

// Loaded reports whether a fetch from the backend has succeeded. A list
// seeded from a snapshot does not count.
func (m *Manager) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

func (m *Manager) SetQuery(query string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.query = query
}

func (m *Manager) Query() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.query
}

func (m *Manager) Modal() ModalState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.modal
}

func (m *Manager) Draft() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.draft
}

// OpenAdd opens the add form with an empty draft. No-op if already open.
func (m *Manager) OpenAdd() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.modal != ModalClosed {
		return
	}
	m.modal = ModalOpen
	m.draft = ""
}

// CloseAdd dismisses the form and drops the draft. Ignored while submitting.
func (m *Manager) CloseAdd() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.modal == ModalSubmitting {
		return
	}
	m.modal = ModalClosed
	m.draft = ""
}

func (m *Manager) SetDraft(description string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.modal {
	case ModalClosed:
		return ErrModalClosed
	case ModalSubmitting:
		return ErrSubmitInProgress
	}
	m.draft = description
	return nil
}

// Submit validates the draft and, if valid, creates it. On success the list is
// reloaded and the form closes; on any failure the form stays open with the
// draft intact. A failed reload after a successful create is notified but not
// returned, since the entry was created.
func (m *Manager) Submit(ctx context.Context) error {
	m.mu.Lock()
	switch m.modal {
	case ModalClosed:
		m.mu.Unlock()
		return ErrModalClosed
	case ModalSubmitting:
		m.mu.Unlock()
		return ErrSubmitInProgress
	}

	description := m.draft
	if err := Validate(description, m.items); err != nil {
		m.mu.Unlock()
		m.logger.Info("payment type rejected", zap.String("descripcion", description), zap.Error(err))
		m.notifier.Error(Message(err))
		return err
	}
	m.modal = ModalSubmitting
	m.mu.Unlock()

	err := m.writer.Create(ctx, models.CreateRequest{
		Description: description,
		Status:      models.StatusActive,
	})
	if err != nil {
		m.mu.Lock()
		m.modal = ModalOpen
		m.mu.Unlock()

		m.logger.Error("failed to create payment type", zap.String("descripcion", description), zap.Error(err))
		m.notifier.Error(MsgCreateFailed)
		return fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}

	m.notifier.Success(MsgCreated)
	m.logger.Info("payment type created", zap.String("descripcion", description))

	// Refresh notifies on its own failure.
	m.Refresh(ctx)

	m.mu.Lock()
	m.modal = ModalClosed
	m.draft = ""
	m.mu.Unlock()

	return nil
}

// Add is the whole add flow in one call: open the form, type, submit.
func (m *Manager) Add(ctx context.Context, description string) error {
	m.OpenAdd()
	if err := m.SetDraft(description); err != nil {
		return err
	}
	return m.Submit(ctx)
}
