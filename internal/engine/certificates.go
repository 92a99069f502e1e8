package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/donaldgifford/ecycle/internal/certificate"
	"github.com/donaldgifford/ecycle/internal/metrics"
	"github.com/donaldgifford/ecycle/internal/notify"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// BulkCertificate returns the certificate summary for a bulk pickup. Totals
// are recomputed from the stored items.
func (e *Engine) BulkCertificate(ctx context.Context, id int64) (*certificate.Summary, error) {
	b, err := e.store.GetBulkPickup(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != domain.BulkCollected && b.Status != domain.BulkVerified {
		return nil, fmt.Errorf("bulk pickup %d is %s: %w", id, b.Status, ErrNotCollected)
	}

	items, err := e.store.ListBulkItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("listing items for bulk pickup %d: %w", id, err)
	}

	return certificate.Bulk(b, items, e.now()), nil
}

// PickupCertificate returns the certificate summary for a collected
// individual pickup. Each call carries a fresh certificate number.
func (e *Engine) PickupCertificate(ctx context.Context, id int64) (*certificate.Summary, error) {
	p, err := e.store.GetPickup(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.PickupCollected {
		return nil, fmt.Errorf("pickup %d is %s: %w", id, p.Status, ErrNotCollected)
	}

	u, err := e.store.GetUser(ctx, p.UserID)
	if err != nil {
		return nil, fmt.Errorf("getting owner of pickup %d: %w", id, err)
	}

	return certificate.Individual(p, u, "", e.now()), nil
}

// IssueDueCertificates issues certificates for collected pickups that asked
// for one and have none. It returns the number issued.
func (e *Engine) IssueDueCertificates(ctx context.Context) (int, error) {
	due, err := e.store.ListCertificatesDue(ctx, e.backfillBatch)
	if err != nil {
		return 0, fmt.Errorf("listing certificates due: %w", err)
	}

	issued := 0
	for i := range due {
		if err := ctx.Err(); err != nil {
			return issued, err
		}
		if err := e.issueBulkCertificate(ctx, &due[i]); err != nil {
			metrics.CertificateFailuresTotal.Inc()
			e.log.Error("backfilling certificate", "bulk_pickup_id", due[i].ID, "error", err)
			continue
		}
		issued++
	}

	if len(due) > 0 {
		e.log.Info("certificate backfill complete", "due", len(due), "issued", issued)
	}
	return issued, nil
}

// issueBulkCertificate assigns a number to b and announces it. Losing the
// race to another issuer is not an error.
func (e *Engine) issueBulkCertificate(ctx context.Context, b *domain.BulkPickup) error {
	num := certificate.NewBulkNumber(b.ID)
	at := e.now()

	err := e.store.SetBulkCertificate(ctx, b.ID, num, at)
	if errors.Is(err, domain.ErrAlreadyIssued) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storing certificate: %w", err)
	}

	b.CertificateNumber = num
	b.CertificateIssued = &at
	metrics.CertificatesIssuedTotal.Inc()

	items, err := e.store.ListBulkItems(ctx, b.ID)
	if err != nil {
		// The number is stored; only the announcement is lost.
		e.log.Warn("listing items for certificate notice", "bulk_pickup_id", b.ID, "error", err)
		return nil
	}
	s := certificate.Bulk(b, items, at)

	e.log.Info("certificate issued", "bulk_pickup_id", b.ID, "certificate", num)

	e.notify(ctx, "certificate", func(ctx context.Context) error {
		return e.notifier.NotifyCertificate(ctx, &notify.CertificatePayload{
			Number:      s.Number,
			Holder:      s.Holder,
			TotalItems:  s.TotalItems,
			EcoPoints:   s.EcoPoints,
			CarbonSaved: s.CarbonSaved,
			URL:         e.link("/certificates/bulk/%d", b.ID),
		})
	})
	return nil
}
