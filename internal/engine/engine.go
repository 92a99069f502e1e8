// Package engine orchestrates valuation, intake, persistence, certificates
// and notifications.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/donaldgifford/ecycle/internal/intake"
	"github.com/donaldgifford/ecycle/internal/metrics"
	"github.com/donaldgifford/ecycle/internal/notify"
	"github.com/donaldgifford/ecycle/internal/store"
	"github.com/donaldgifford/ecycle/pkg/carbon"
	domain "github.com/donaldgifford/ecycle/pkg/types"
	"github.com/donaldgifford/ecycle/pkg/valuation"
)

const defaultBackfillBatch = 50

// Engine orchestrates pickups, bulk intake, certificates and rewards.
type Engine struct {
	store      store.Store
	notifier   notify.Notifier
	table      *valuation.Table
	reconciler *intake.Reconciler
	log        *slog.Logger

	baseURL       string
	backfillBatch int
	now           func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:         s,
		notifier:      n,
		table:         valuation.New(),
		log:           slog.Default(),
		backfillBatch: defaultBackfillBatch,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.reconciler == nil {
		eng.reconciler = intake.NewReconciler(
			intake.WithLogger(eng.log),
			intake.WithTable(eng.table),
		)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTable replaces the valuation table.
func WithTable(t *valuation.Table) EngineOption {
	return func(e *Engine) {
		e.table = t
	}
}

// WithReconciler replaces the intake reconciler.
func WithReconciler(r *intake.Reconciler) EngineOption {
	return func(e *Engine) {
		e.reconciler = r
	}
}

// WithBaseURL sets the public URL used for links in notifications.
func WithBaseURL(u string) EngineOption {
	return func(e *Engine) {
		e.baseURL = strings.TrimRight(u, "/")
	}
}

// WithBackfillBatch sets how many pickups one certificate backfill run
// handles.
func WithBackfillBatch(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.backfillBatch = n
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// Store returns the engine's store, for health checks.
func (e *Engine) Store() store.Store {
	return e.store
}

// --- Quotes ---

// QuoteRequest asks for the value of quantity units on one intake path.
// Exactly one of IndividualCondition and BulkCondition is consulted: the
// bulk table when Bulk is set.
type QuoteRequest struct {
	Category            domain.Category
	Bulk                bool
	IndividualCondition domain.IndividualCondition
	BulkCondition       domain.BulkCondition
	Quantity            int
}

// Quote is the priced answer to a QuoteRequest.
type Quote struct {
	Valuation      domain.ValuationResult `json:"valuation"`
	Carbon         domain.CarbonImpact    `json:"carbon"`
	Known          bool                   `json:"known_category"`
	TotalPrice     int                    `json:"total_price"`
	TotalEcoPoints int                    `json:"total_eco_points"`
}

// Quote prices a request without touching the store. Quantities below one
// are treated as one.
func (e *Engine) Quote(req QuoteRequest) Quote {
	q := max(req.Quantity, 1)

	var v domain.ValuationResult
	if req.Bulk {
		v = e.table.Bulk(req.Category, req.BulkCondition)
	} else {
		v = e.table.Individual(req.Category, req.IndividualCondition)
	}

	return Quote{
		Valuation:      v,
		Carbon:         carbon.Impact(req.Category, q),
		Known:          e.table.Known(req.Category),
		TotalPrice:     v.EstimatedPrice * q,
		TotalEcoPoints: v.EcoPoints * q,
	}
}

// CategoryInfo is one vocabulary entry with its lookup figures.
type CategoryInfo struct {
	Category     domain.Category `json:"category"`
	BasePrice    int             `json:"base_price"`
	Priced       bool            `json:"priced"`
	KgCO2PerUnit float64         `json:"kg_co2_per_unit"`
}

// Categories lists the canonical vocabulary with base price and carbon per
// unit.
func (e *Engine) Categories() []CategoryInfo {
	out := make([]CategoryInfo, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		out = append(out, CategoryInfo{
			Category:     c,
			BasePrice:    e.table.BasePrice(c),
			Priced:       e.table.Known(c),
			KgCO2PerUnit: carbon.PerUnit(c),
		})
	}
	return out
}

// --- Users ---

// CreateUser registers a user with zeroed counters.
func (e *Engine) CreateUser(ctx context.Context, username, email string) (*domain.User, error) {
	u := &domain.User{Username: username, Email: email}
	if err := e.store.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// GetUser returns a user's counters.
func (e *Engine) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return e.store.GetUser(ctx, id)
}

// --- Individual pickups ---

// PickupRequest schedules the pickup of one device.
type PickupRequest struct {
	UserID              int64
	Category            domain.Category
	Model               string
	RAM                 string
	Condition           domain.IndividualCondition
	PickupDate          time.Time
	Address             string
	ClassificationLabel string
	ImagePath           string
}

// SchedulePickup values the device and stores it with its pickup, crediting
// the user's points and carbon in the same transaction.
func (e *Engine) SchedulePickup(ctx context.Context, req PickupRequest) (*domain.Pickup, error) {
	v := e.table.Individual(req.Category, req.Condition)
	saved := carbon.Saved(req.Category, 1)

	d := &domain.Device{
		UserID:              req.UserID,
		Category:            req.Category,
		Model:               req.Model,
		RAM:                 req.RAM,
		Condition:           req.Condition,
		EstimatedPrice:      v.EstimatedPrice,
		EcoPoints:           v.EcoPoints,
		ClassificationLabel: req.ClassificationLabel,
		ImagePath:           req.ImagePath,
	}
	p := &domain.Pickup{
		UserID:     req.UserID,
		PickupDate: req.PickupDate,
		Address:    req.Address,
		Status:     domain.PickupPending,
	}

	if err := e.store.SchedulePickup(ctx, d, p, domain.Credit{
		EcoPoints:   v.EcoPoints,
		CarbonSaved: saved,
	}); err != nil {
		return nil, fmt.Errorf("scheduling pickup: %w", err)
	}

	metrics.PickupsScheduledTotal.Inc()
	metrics.EcoPointsAwardedTotal.Add(float64(v.EcoPoints))
	metrics.CarbonSavedKgTotal.Add(saved)

	e.log.Info("pickup scheduled",
		"pickup_id", p.ID,
		"user_id", p.UserID,
		"category", d.Category,
		"eco_points", v.EcoPoints,
	)
	return p, nil
}

// GetPickup returns a pickup with its device.
func (e *Engine) GetPickup(ctx context.Context, id int64) (*domain.Pickup, error) {
	return e.store.GetPickup(ctx, id)
}

// ListPickups returns a user's pickups, newest first.
func (e *Engine) ListPickups(ctx context.Context, userID int64) ([]domain.Pickup, error) {
	if _, err := e.store.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	return e.store.ListPickups(ctx, userID)
}

// SetPickupStatus changes an individual pickup's status. Counters were
// credited at scheduling and are not touched again.
func (e *Engine) SetPickupStatus(ctx context.Context, id int64, status domain.PickupStatus) error {
	if status != domain.PickupPending && status != domain.PickupCollected {
		return fmt.Errorf("pickup status %q: %w", status, ErrInvalidStatus)
	}
	if err := e.store.SetPickupStatus(ctx, id, status); err != nil {
		return fmt.Errorf("setting pickup %d status: %w", id, err)
	}
	e.log.Info("pickup status changed", "pickup_id", id, "status", status)
	return nil
}

// --- Rewards ---

// ListRewards returns active rewards.
func (e *Engine) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	return e.store.ListRewards(ctx, true)
}

// RedeemReward spends a user's points on a reward.
func (e *Engine) RedeemReward(ctx context.Context, userID, rewardID int64) (*domain.Redemption, error) {
	red, err := e.store.RedeemReward(ctx, userID, rewardID)
	if err != nil {
		metrics.RedemptionsTotal.WithLabelValues(redemptionOutcome(err)).Inc()
		return nil, err
	}

	metrics.RedemptionsTotal.WithLabelValues("redeemed").Inc()
	e.log.Info("reward redeemed",
		"user_id", userID,
		"reward_id", rewardID,
		"points", red.PointsSpent,
	)
	return red, nil
}
