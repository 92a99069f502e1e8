package notify

import (
	"context"
	"log/slog"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when no webhook is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyBulkPickup logs and discards a bulk pickup announcement.
func (n *NoOpNotifier) NotifyBulkPickup(_ context.Context, p *BulkPickupPayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"bulk_pickup_id", p.PickupID,
		"organization", p.Organization,
		"items", p.TotalItems,
	)
	return nil
}

// NotifyCertificate logs and discards a certificate announcement.
func (n *NoOpNotifier) NotifyCertificate(_ context.Context, c *CertificatePayload) error {
	n.log.Debug("notification discarded (no backend configured)",
		"certificate", c.Number,
		"holder", c.Holder,
	)
	return nil
}
