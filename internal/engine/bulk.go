package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/donaldgifford/ecycle/internal/intake"
	"github.com/donaldgifford/ecycle/internal/metrics"
	"github.com/donaldgifford/ecycle/internal/notify"
	"github.com/donaldgifford/ecycle/internal/store"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// Engine errors mapped to client errors at the API boundary.
var (
	ErrInvalidStatus = errors.New("invalid status")
	ErrNotCollected  = errors.New("pickup has not been collected")
)

// BulkPickupRequest holds the organization details of a bulk submission.
type BulkPickupRequest struct {
	UserID              int64
	OrganizationName    string
	OrganizationType    domain.OrganizationType
	ContactPerson       string
	ContactEmail        string
	ContactPhone        string
	PickupAddress       string
	GSTIN               string
	PreferredDate       time.Time
	SpecialInstructions string
	RequestCertificate  bool
	RequestTaxReceipt   bool
}

// BulkSubmission is a persisted bulk pickup with the batch it came from.
type BulkSubmission struct {
	Pickup *domain.BulkPickup `json:"pickup"`
	Items  []domain.BulkItem  `json:"items"`
	Batch  *intake.Batch      `json:"batch"`
}

// BulkPickupDetail is a bulk pickup with its stored items.
type BulkPickupDetail struct {
	Pickup *domain.BulkPickup `json:"pickup"`
	Items  []domain.BulkItem  `json:"items"`
}

// PreviewBulk reconciles sources without persisting anything.
func (e *Engine) PreviewBulk(ctx context.Context, sources ...intake.Source) *intake.Batch {
	return e.reconciler.Reconcile(ctx, sources...)
}

// SubmitBulkPickup reconciles every source, then stores the pickup, its
// accepted items and the user's credit in one transaction. Row and file
// failures are reported in the batch; only a failed commit is an error.
// Notification failures are logged and counted.
func (e *Engine) SubmitBulkPickup(
	ctx context.Context,
	req BulkPickupRequest,
	sources ...intake.Source,
) (*BulkSubmission, error) {
	batch := e.reconciler.Reconcile(ctx, sources...)
	items := batch.Items()

	orgType := req.OrganizationType
	if orgType == "" {
		orgType = domain.OrgOther
	}

	b := &domain.BulkPickup{
		UserID:              req.UserID,
		OrganizationName:    req.OrganizationName,
		OrganizationType:    orgType,
		ContactPerson:       req.ContactPerson,
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		PickupAddress:       req.PickupAddress,
		GSTIN:               req.GSTIN,
		PreferredDate:       req.PreferredDate,
		SpecialInstructions: req.SpecialInstructions,
		TotalItems:          batch.Totals.Quantity,
		EstimatedEcoPoints:  batch.Totals.EcoPoints,
		RequestCertificate:  req.RequestCertificate,
		RequestTaxReceipt:   req.RequestTaxReceipt,
		Status:              domain.BulkPending,
	}

	credit := domain.Credit{
		EcoPoints:   batch.Totals.EcoPoints,
		CarbonSaved: batch.Totals.CarbonSaved,
	}
	if err := e.store.CreateBulkPickup(ctx, b, items, credit); err != nil {
		return nil, fmt.Errorf("saving bulk pickup: %w", err)
	}

	metrics.BulkPickupsSubmittedTotal.Inc()
	metrics.EcoPointsAwardedTotal.Add(float64(credit.EcoPoints))
	metrics.CarbonSavedKgTotal.Add(credit.CarbonSaved)

	e.log.Info("bulk pickup submitted",
		"bulk_pickup_id", b.ID,
		"user_id", b.UserID,
		"accepted", batch.Accepted(),
		"skipped", batch.Skipped(),
		"file_failures", len(batch.FileFailures),
		"eco_points", credit.EcoPoints,
	)

	e.notify(ctx, "bulk pickup", func(ctx context.Context) error {
		return e.notifier.NotifyBulkPickup(ctx, &notify.BulkPickupPayload{
			PickupID:         b.ID,
			Organization:     b.OrganizationName,
			OrganizationType: string(b.OrganizationType),
			ContactPerson:    b.ContactPerson,
			PreferredDate:    b.PreferredDate,
			TotalItems:       b.TotalItems,
			EcoPoints:        credit.EcoPoints,
			CarbonSaved:      credit.CarbonSaved,
			SkippedRows:      batch.Skipped(),
			URL:              e.link("/api/v1/bulk-pickups/%d", b.ID),
		})
	})

	return &BulkSubmission{Pickup: b, Items: items, Batch: batch}, nil
}

// GetBulkPickup returns a bulk pickup with its items.
func (e *Engine) GetBulkPickup(ctx context.Context, id int64) (*BulkPickupDetail, error) {
	b, err := e.store.GetBulkPickup(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := e.store.ListBulkItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing items for bulk pickup %d: %w", id, err)
	}
	return &BulkPickupDetail{Pickup: b, Items: items}, nil
}

// ListBulkPickups returns a page of bulk pickups and the total match count.
func (e *Engine) ListBulkPickups(
	ctx context.Context,
	q *store.BulkPickupQuery,
) ([]domain.BulkPickup, int, error) {
	if q != nil && q.Status != nil && !q.Status.Valid() {
		return nil, 0, fmt.Errorf("bulk pickup status %q: %w", *q.Status, ErrInvalidStatus)
	}
	return e.store.ListBulkPickups(ctx, q)
}

// UpdateBulkPickup applies an admin update. A transition into Collected on a
// pickup that asked for a certificate issues it; a failed issuance is logged
// and left for the backfill job.
func (e *Engine) UpdateBulkPickup(
	ctx context.Context,
	id int64,
	u domain.BulkPickupUpdate,
) (*domain.BulkPickup, error) {
	if u.Status != nil && !u.Status.Valid() {
		return nil, fmt.Errorf("bulk pickup status %q: %w", *u.Status, ErrInvalidStatus)
	}
	if u.ActualEcoPoints != nil && *u.ActualEcoPoints < 0 {
		return nil, fmt.Errorf("actual eco points must not be negative: %w", ErrInvalidStatus)
	}

	prev, err := e.store.GetBulkPickup(ctx, id)
	if err != nil {
		return nil, err
	}

	b, err := e.store.UpdateBulkPickup(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("updating bulk pickup %d: %w", id, err)
	}

	e.log.Info("bulk pickup updated",
		"bulk_pickup_id", id,
		"from", prev.Status,
		"to", b.Status,
	)

	if prev.Status != domain.BulkCollected && b.Status == domain.BulkCollected &&
		b.RequestCertificate && b.CertificateNumber == "" {
		if err := e.issueBulkCertificate(ctx, b); err != nil {
			metrics.CertificateFailuresTotal.Inc()
			e.log.Error("issuing certificate", "bulk_pickup_id", id, "error", err)
		}
	}

	return b, nil
}

// notify runs send, logging and counting failures.
func (e *Engine) notify(ctx context.Context, what string, send func(context.Context) error) {
	if e.notifier == nil {
		return
	}
	if err := send(ctx); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		e.log.Warn("notification failed", "kind", what, "error", err)
	}
}

func (e *Engine) link(format string, args ...any) string {
	if e.baseURL == "" {
		return ""
	}
	return e.baseURL + fmt.Sprintf(format, args...)
}

func redemptionOutcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrInsufficientPoints):
		return "insufficient_points"
	case errors.Is(err, domain.ErrOutOfStock):
		return "out_of_stock"
	case errors.Is(err, domain.ErrRewardInactive):
		return "inactive"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	default:
		return "error"
	}
}
