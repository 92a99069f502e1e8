// Package store defines the datastore abstraction for ecycle.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// BulkPickupQuery defines optional filters for bulk pickup listings.
type BulkPickupQuery struct {
	Status       *domain.BulkPickupStatus
	UserID       *int64
	Organization *string // case-insensitive substring
	Limit        int     // default 50
	Offset       int
	OrderBy      string // "created_at", "preferred_date", "total_items"
}

// Store defines all data access operations for ecycle.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, id int64) (*domain.User, error)

	// Individual pickups

	// SchedulePickup inserts d and p and credits the user in one transaction.
	SchedulePickup(ctx context.Context, d *domain.Device, p *domain.Pickup, credit domain.Credit) error
	GetPickup(ctx context.Context, id int64) (*domain.Pickup, error)
	ListPickups(ctx context.Context, userID int64) ([]domain.Pickup, error)
	SetPickupStatus(ctx context.Context, id int64, status domain.PickupStatus) error

	// Bulk pickups

	// CreateBulkPickup inserts b with its items and credits the owning user in
	// one transaction. Item IDs and b's generated fields are filled in.
	CreateBulkPickup(ctx context.Context, b *domain.BulkPickup, items []domain.BulkItem, credit domain.Credit) error
	GetBulkPickup(ctx context.Context, id int64) (*domain.BulkPickup, error)
	ListBulkPickups(ctx context.Context, q *BulkPickupQuery) ([]domain.BulkPickup, int, error)
	ListBulkItems(ctx context.Context, bulkPickupID int64) ([]domain.BulkItem, error)
	UpdateBulkPickup(ctx context.Context, id int64, u domain.BulkPickupUpdate) (*domain.BulkPickup, error)
	// SetBulkCertificate records the certificate once; a second call returns
	// domain.ErrAlreadyIssued.
	SetBulkCertificate(ctx context.Context, id int64, number string, issuedAt time.Time) error
	// ListCertificatesDue returns collected or verified pickups that asked for
	// a certificate and have none.
	ListCertificatesDue(ctx context.Context, limit int) ([]domain.BulkPickup, error)

	// Rewards
	ListRewards(ctx context.Context, activeOnly bool) ([]domain.Reward, error)
	RedeemReward(ctx context.Context, userID, rewardID int64) (*domain.Redemption, error)

	// Lifecycle
	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
}
