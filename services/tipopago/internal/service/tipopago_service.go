// services/tipopago/internal/service/tipopago_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"carniceria-admin/services/tipopago/internal/models"
	"carniceria-admin/services/tipopago/internal/repository"
)

var (
	ErrEmptyDescription     = errors.New("description is empty")
	ErrDuplicateDescription = errors.New("description already exists")
)

type Repository interface {
	Create(ctx context.Context, tp *models.TipoPago) error
	GetByID(ctx context.Context, id int) (*models.TipoPago, error)
	List(ctx context.Context) ([]*models.TipoPago, error)
}

type Cache interface {
	Get(ctx context.Context) ([]*models.TipoPago, error)
	Generation() uint64
	Set(ctx context.Context, generation uint64, list []*models.TipoPago) error
	Invalidate(ctx context.Context) error
}

// EventPublisher receives catalog events after they are committed.
type EventPublisher interface {
	Publish(ctx context.Context, event *models.Event) error
}

type TipoPagoService struct {
	repo    Repository
	cache   Cache
	events  EventPublisher
	metrics *Metrics
	logger  *zap.Logger
	now     func() time.Time
}

func NewTipoPagoService(repo Repository, cache Cache, events EventPublisher, metrics *Metrics, logger *zap.Logger) *TipoPagoService {
	return &TipoPagoService{
		repo:    repo,
		cache:   cache,
		events:  events,
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns the full catalog, served from cache when possible.
func (s *TipoPagoService) List(ctx context.Context) ([]*models.TipoPago, error) {
	if cached, err := s.cache.Get(ctx); err == nil {
		return cached, nil
	}

	generation := s.cache.Generation()
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment types: %w", err)
	}

	if err := s.cache.Set(ctx, generation, list); err != nil {
		s.logger.Warn("failed to cache payment types", zap.Error(err))
	}

	return list, nil
}

// Get returns nil, nil when the id does not exist.
func (s *TipoPagoService) Get(ctx context.Context, id int) (*models.TipoPago, error) {
	return s.repo.GetByID(ctx, id)
}

// Create adds a payment type. The unique index is the authority on duplicates;
// clients are expected to pre-check against their own copy of the list.
func (s *TipoPagoService) Create(ctx context.Context, req *models.CreateTipoPagoRequest, requestID string) (*models.TipoPago, error) {
	if strings.TrimSpace(req.Descripcion) == "" {
		s.metrics.rejected.WithLabelValues("empty").Inc()
		return nil, ErrEmptyDescription
	}

	now := s.now()
	tp := &models.TipoPago{
		Descripcion: req.Descripcion,
		Estado:      req.Estado,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, tp); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			s.metrics.rejected.WithLabelValues("duplicate").Inc()
			return nil, ErrDuplicateDescription
		}
		return nil, fmt.Errorf("failed to save payment type: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("failed to invalidate payment type cache", zap.Error(err))
	}

	s.metrics.created.Inc()
	s.publishEvent(ctx, models.EventTipoPagoCreated, tp, requestID)

	s.logger.Info("payment type created",
		zap.Int("id_tipo_pago", tp.ID),
		zap.String("descripcion", tp.Descripcion),
		zap.String("request_id", requestID))

	return tp, nil
}

func (s *TipoPagoService) publishEvent(ctx context.Context, eventType string, tp *models.TipoPago, requestID string) {
	event := &models.Event{
		Type:       eventType,
		TipoPagoID: tp.ID,
		Payload:    tp,
		RequestID:  requestID,
		OccurredAt: s.now(),
	}

	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("type", eventType),
			zap.Int("id_tipo_pago", tp.ID),
			zap.Error(err))
	}
}

// LogPublisher is the event sink used when no audit store is configured.
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event *models.Event) error {
	p.logger.Info("event",
		zap.String("type", event.Type),
		zap.Int("id_tipo_pago", event.TipoPagoID),
		zap.String("request_id", event.RequestID))
	return nil
}

// Metrics are the catalog counters exported on /metrics.
type Metrics struct {
	created  prometheus.Counter
	rejected *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tipopago",
			Name:      "created_total",
			Help:      "Payment types created.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipopago",
			Name:      "rejected_total",
			Help:      "Payment type creations rejected, by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.created, m.rejected)
	return m
}
