// Package notify defines the notification interface and implementations
// for operator announcements.
package notify

import (
	"context"
	"time"
)

// BulkPickupPayload announces a newly submitted bulk pickup.
type BulkPickupPayload struct {
	PickupID         int64
	Organization     string
	OrganizationType string
	ContactPerson    string
	PreferredDate    time.Time
	TotalItems       int
	EcoPoints        int
	CarbonSaved      float64
	SkippedRows      int
	URL              string
}

// CertificatePayload announces an issued recycling certificate.
type CertificatePayload struct {
	Number      string
	Holder      string
	TotalItems  int
	EcoPoints   int
	CarbonSaved float64
	URL         string
}

// Notifier defines the interface for sending operator notifications.
type Notifier interface {
	NotifyBulkPickup(ctx context.Context, p *BulkPickupPayload) error
	NotifyCertificate(ctx context.Context, c *CertificatePayload) error
}
