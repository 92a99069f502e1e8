package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// PostgresStore methods require live Postgres and are covered by the
// integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if !strings.Contains(connString, "pool_max_conns") {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := RunMigrations(ctx, s.pool)
	return err
}

// --- Users ---

// CreateUser inserts u and fills in its ID and creation time.
func (s *PostgresStore) CreateUser(ctx context.Context, u *domain.User) error {
	args := pgx.NamedArgs{
		"username":     u.Username,
		"email":        u.Email,
		"eco_points":   u.EcoPoints,
		"carbon_saved": u.CarbonSaved,
	}
	if err := s.pool.QueryRow(ctx, queryInsertUser, args).Scan(&u.ID, &u.CreatedAt); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

// GetUser returns the user with the given ID.
func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	err := s.pool.QueryRow(ctx, queryGetUser, id).Scan(
		&u.ID, &u.Username, &u.Email, &u.EcoPoints, &u.CarbonSaved, &u.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting user %d: %w", id, err)
	}
	return u, nil
}

// lockUser takes the row lock on the user and returns the current balance.
func lockUser(ctx context.Context, tx pgx.Tx, userID int64) (int, error) {
	var points int
	err := tx.QueryRow(ctx, queryLockUser, userID).Scan(&points)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("user %d: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("locking user %d: %w", userID, err)
	}
	return points, nil
}

func creditUser(ctx context.Context, tx pgx.Tx, userID int64, c domain.Credit) error {
	if _, err := lockUser(ctx, tx, userID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, queryCreditUser, userID, c.EcoPoints, c.CarbonSaved); err != nil {
		return fmt.Errorf("crediting user %d: %w", userID, err)
	}
	return nil
}

// --- Individual pickups ---

// SchedulePickup inserts the device and its pickup and credits the user, all
// in one transaction.
func (s *PostgresStore) SchedulePickup(
	ctx context.Context,
	d *domain.Device,
	p *domain.Pickup,
	credit domain.Credit,
) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if err := creditUser(ctx, tx, p.UserID, credit); err != nil {
			return err
		}

		d.UserID = p.UserID
		err := tx.QueryRow(ctx, queryInsertDevice, pgx.NamedArgs{
			"user_id":               d.UserID,
			"ewaste_type":           string(d.Category),
			"model":                 d.Model,
			"ram":                   d.RAM,
			"condition":             string(d.Condition),
			"estimated_price":       d.EstimatedPrice,
			"eco_points":            d.EcoPoints,
			"classification_result": d.ClassificationLabel,
			"image_path":            d.ImagePath,
		}).Scan(&d.ID, &d.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting device: %w", err)
		}

		p.DeviceID = d.ID
		if p.Status == "" {
			p.Status = domain.PickupPending
		}
		err = tx.QueryRow(ctx, queryInsertPickup, pgx.NamedArgs{
			"user_id":     p.UserID,
			"ewaste_id":   p.DeviceID,
			"pickup_date": p.PickupDate,
			"address":     p.Address,
			"status":      string(p.Status),
		}).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			return fmt.Errorf("inserting pickup: %w", err)
		}

		p.Device = d
		return nil
	})
}

// GetPickup returns a pickup with its device.
func (s *PostgresStore) GetPickup(ctx context.Context, id int64) (*domain.Pickup, error) {
	p, err := scanPickup(s.pool.QueryRow(ctx, queryGetPickup, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("pickup %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting pickup %d: %w", id, err)
	}
	return p, nil
}

// ListPickups returns a user's pickups, newest first.
func (s *PostgresStore) ListPickups(ctx context.Context, userID int64) ([]domain.Pickup, error) {
	rows, err := s.pool.Query(ctx, queryListPickupsByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("querying pickups: %w", err)
	}
	defer rows.Close()

	pickups := []domain.Pickup{}
	for rows.Next() {
		p, err := scanPickup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning pickup: %w", err)
		}
		pickups = append(pickups, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pickups: %w", err)
	}
	return pickups, nil
}

// SetPickupStatus changes an individual pickup's status.
func (s *PostgresStore) SetPickupStatus(ctx context.Context, id int64, status domain.PickupStatus) error {
	tag, err := s.pool.Exec(ctx, querySetPickupStatus, id, string(status))
	if err != nil {
		return fmt.Errorf("updating pickup %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pickup %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// --- Bulk pickups ---

// CreateBulkPickup inserts the pickup and every item and credits the owning
// user. Any failure rolls back the whole batch.
func (s *PostgresStore) CreateBulkPickup(
	ctx context.Context,
	b *domain.BulkPickup,
	items []domain.BulkItem,
	credit domain.Credit,
) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		if err := creditUser(ctx, tx, b.UserID, credit); err != nil {
			return err
		}

		if b.Status == "" {
			b.Status = domain.BulkPending
		}
		err := tx.QueryRow(ctx, queryInsertBulkPickup, pgx.NamedArgs{
			"user_id":              b.UserID,
			"organization_name":    b.OrganizationName,
			"organization_type":    string(b.OrganizationType),
			"contact_person":       b.ContactPerson,
			"contact_email":        b.ContactEmail,
			"contact_phone":        b.ContactPhone,
			"pickup_address":       b.PickupAddress,
			"gstin":                b.GSTIN,
			"preferred_date":       b.PreferredDate,
			"special_instructions": b.SpecialInstructions,
			"total_items":          b.TotalItems,
			"estimated_eco_points": b.EstimatedEcoPoints,
			"request_certificate":  b.RequestCertificate,
			"request_tax_receipt":  b.RequestTaxReceipt,
			"status":               string(b.Status),
		}).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return fmt.Errorf("inserting bulk pickup: %w", err)
		}

		batch := &pgx.Batch{}
		for _, it := range items {
			batch.Queue(queryInsertBulkItem,
				b.ID, string(it.Category), it.BrandModel, it.Quantity, string(it.Condition),
				it.Notes, it.EstimatedPricePerUnit, it.EcoPointsPerUnit,
			)
		}

		br := tx.SendBatch(ctx, batch)
		for i := range items {
			if err := br.QueryRow().Scan(&items[i].ID); err != nil {
				_ = br.Close()
				return fmt.Errorf("inserting bulk item %d: %w", i, err)
			}
			items[i].BulkPickupID = b.ID
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("closing item batch: %w", err)
		}

		return nil
	})
}

// GetBulkPickup returns the bulk pickup with the given ID.
func (s *PostgresStore) GetBulkPickup(ctx context.Context, id int64) (*domain.BulkPickup, error) {
	b, err := scanBulkPickup(s.pool.QueryRow(ctx, queryGetBulkPickup, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("bulk pickup %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting bulk pickup %d: %w", id, err)
	}
	return b, nil
}

// ListBulkPickups queries bulk pickups with optional filters, returning the
// page and the total match count.
func (s *PostgresStore) ListBulkPickups(
	ctx context.Context,
	q *BulkPickupQuery,
) ([]domain.BulkPickup, int, error) {
	if q == nil {
		q = &BulkPickupQuery{}
	}
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting bulk pickups: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying bulk pickups: %w", err)
	}
	pickups, err := collectBulkPickups(rows)
	if err != nil {
		return nil, 0, err
	}

	return pickups, total, nil
}

// ListBulkItems returns a pickup's items in insertion order.
func (s *PostgresStore) ListBulkItems(ctx context.Context, bulkPickupID int64) ([]domain.BulkItem, error) {
	rows, err := s.pool.Query(ctx, queryListBulkItems, bulkPickupID)
	if err != nil {
		return nil, fmt.Errorf("querying bulk items: %w", err)
	}
	defer rows.Close()

	items := []domain.BulkItem{}
	for rows.Next() {
		var it domain.BulkItem
		if err := rows.Scan(
			&it.ID, &it.BulkPickupID, &it.Category, &it.BrandModel, &it.Quantity,
			&it.Condition, &it.Notes, &it.EstimatedPricePerUnit, &it.EcoPointsPerUnit,
		); err != nil {
			return nil, fmt.Errorf("scanning bulk item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bulk items: %w", err)
	}
	return items, nil
}

// UpdateBulkPickup applies the non-nil fields of u and returns the updated
// row.
func (s *PostgresStore) UpdateBulkPickup(
	ctx context.Context,
	id int64,
	u domain.BulkPickupUpdate,
) (*domain.BulkPickup, error) {
	var status *string
	if u.Status != nil {
		v := string(*u.Status)
		status = &v
	}

	b, err := scanBulkPickup(s.pool.QueryRow(ctx, queryUpdateBulkPickup, pgx.NamedArgs{
		"id":                id,
		"status":            status,
		"assigned_team":     u.AssignedTeam,
		"actual_eco_points": u.ActualEcoPoints,
	}))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("bulk pickup %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("updating bulk pickup %d: %w", id, err)
	}
	return b, nil
}

// SetBulkCertificate stores the certificate number unless one is already set.
func (s *PostgresStore) SetBulkCertificate(
	ctx context.Context,
	id int64,
	number string,
	issuedAt time.Time,
) error {
	tag, err := s.pool.Exec(ctx, querySetBulkCertificate, id, number, issuedAt)
	if err != nil {
		return fmt.Errorf("setting certificate on bulk pickup %d: %w", id, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := s.pool.QueryRow(ctx, queryBulkPickupExists, id).Scan(&exists); err != nil {
		return fmt.Errorf("checking bulk pickup %d: %w", id, err)
	}
	if !exists {
		return fmt.Errorf("bulk pickup %d: %w", id, domain.ErrNotFound)
	}
	return fmt.Errorf("bulk pickup %d: %w", id, domain.ErrAlreadyIssued)
}

// ListCertificatesDue returns up to limit pickups awaiting a certificate.
func (s *PostgresStore) ListCertificatesDue(ctx context.Context, limit int) ([]domain.BulkPickup, error) {
	rows, err := s.pool.Query(ctx, queryListCertificatesDue, limit)
	if err != nil {
		return nil, fmt.Errorf("querying certificates due: %w", err)
	}
	return collectBulkPickups(rows)
}

// --- Rewards ---

// ListRewards returns the reward catalog, cheapest first.
func (s *PostgresStore) ListRewards(ctx context.Context, activeOnly bool) ([]domain.Reward, error) {
	query := queryListRewards
	if activeOnly {
		query = queryListActiveRewards
	}

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rewards: %w", err)
	}
	defer rows.Close()

	rewards := []domain.Reward{}
	for rows.Next() {
		r, err := scanReward(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning reward: %w", err)
		}
		rewards = append(rewards, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rewards: %w", err)
	}
	return rewards, nil
}

// RedeemReward spends the user's points on one unit of the reward. The user
// and reward rows are locked for the duration, so concurrent redemptions
// cannot overdraw points or stock.
func (s *PostgresStore) RedeemReward(ctx context.Context, userID, rewardID int64) (*domain.Redemption, error) {
	var red *domain.Redemption

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		balance, err := lockUser(ctx, tx, userID)
		if err != nil {
			return err
		}

		reward, err := scanReward(tx.QueryRow(ctx, queryLockReward, rewardID))
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("reward %d: %w", rewardID, domain.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("locking reward %d: %w", rewardID, err)
		}

		switch {
		case !reward.Active:
			return domain.ErrRewardInactive
		case reward.Stock <= 0:
			return domain.ErrOutOfStock
		case balance < reward.PointsRequired:
			return fmt.Errorf("need %d more points: %w",
				reward.PointsRequired-balance, domain.ErrInsufficientPoints)
		}

		if _, err := tx.Exec(ctx, queryDebitUser, userID, reward.PointsRequired); err != nil {
			return fmt.Errorf("debiting user %d: %w", userID, err)
		}
		if _, err := tx.Exec(ctx, queryDecrementStock, rewardID); err != nil {
			return fmt.Errorf("decrementing stock for reward %d: %w", rewardID, err)
		}

		red = &domain.Redemption{
			UserID:      userID,
			RewardID:    rewardID,
			PointsSpent: reward.PointsRequired,
			Status:      domain.RedemptionPending,
		}
		if err := tx.QueryRow(ctx, queryInsertRedemption,
			userID, rewardID, red.PointsSpent, string(red.Status),
		).Scan(&red.ID, &red.CreatedAt); err != nil {
			return fmt.Errorf("inserting redemption: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return red, nil
}

// --- Scanning helpers ---

// scannable abstracts pgx.Row and pgx.Rows for reuse.
type scannable interface {
	Scan(dest ...any) error
}

func scanPickup(row scannable) (*domain.Pickup, error) {
	p := &domain.Pickup{Device: &domain.Device{}}
	d := p.Device
	err := row.Scan(
		&p.ID, &p.UserID, &p.DeviceID, &p.PickupDate, &p.Address, &p.Status, &p.CreatedAt,
		&d.ID, &d.UserID, &d.Category, &d.Model, &d.RAM, &d.Condition,
		&d.EstimatedPrice, &d.EcoPoints, &d.ClassificationLabel, &d.ImagePath, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func scanBulkPickup(row scannable) (*domain.BulkPickup, error) {
	b := &domain.BulkPickup{}
	var certNo *string
	err := row.Scan(
		&b.ID, &b.UserID, &b.OrganizationName, &b.OrganizationType,
		&b.ContactPerson, &b.ContactEmail, &b.ContactPhone, &b.PickupAddress, &b.GSTIN,
		&b.PreferredDate, &b.SpecialInstructions, &b.TotalItems, &b.EstimatedEcoPoints,
		&b.ActualEcoPoints, &b.RequestCertificate, &b.RequestTaxReceipt, &b.Status,
		&b.AssignedTeam, &certNo, &b.CertificateIssued, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if certNo != nil {
		b.CertificateNumber = *certNo
	}
	return b, nil
}

func collectBulkPickups(rows pgx.Rows) ([]domain.BulkPickup, error) {
	defer rows.Close()

	pickups := []domain.BulkPickup{}
	for rows.Next() {
		b, err := scanBulkPickup(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bulk pickup: %w", err)
		}
		pickups = append(pickups, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bulk pickups: %w", err)
	}
	return pickups, nil
}

func scanReward(row scannable) (*domain.Reward, error) {
	r := &domain.Reward{}
	if err := row.Scan(
		&r.ID, &r.Name, &r.Description, &r.PointsRequired,
		&r.RewardType, &r.Stock, &r.Active, &r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return r, nil
}
