//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/donaldgifford/ecycle/internal/store"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("ecycle_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func createUser(t *testing.T, s *store.PostgresStore, name string, points int) *domain.User {
	t.Helper()
	u := &domain.User{Username: name, Email: name + "@example.com", EcoPoints: points}
	require.NoError(t, s.CreateUser(context.Background(), u))
	require.NotZero(t, u.ID)
	return u
}

func testBulkPickup(userID int64, org string) *domain.BulkPickup {
	return &domain.BulkPickup{
		UserID:             userID,
		OrganizationName:   org,
		OrganizationType:   domain.OrgOffice,
		ContactPerson:      "Dana",
		ContactEmail:       "dana@example.com",
		ContactPhone:       "5550199",
		PickupAddress:      "4 Dock St",
		PreferredDate:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		TotalItems:         5,
		EstimatedEcoPoints: 37,
		RequestCertificate: true,
	}
}

func testBulkItems() []domain.BulkItem {
	return []domain.BulkItem{
		{Category: domain.CategoryLaptop, BrandModel: "X1", Quantity: 2, Condition: domain.BulkWorking, EstimatedPricePerUnit: 144, EcoPointsPerUnit: 14},
		{Category: domain.CategorySmartphone, Quantity: 3, Condition: domain.BulkScrap, EstimatedPricePerUnit: 35, EcoPointsPerUnit: 3},
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_MigrateIsIdempotent(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Migrate(context.Background()))

	rewards, err := s.ListRewards(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, rewards, 4, "seed rows must not be applied twice")
}

func TestPostgresStore_Users(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := createUser(t, s, "asha", 0)

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha", got.Username)
	assert.Zero(t, got.EcoPoints)

	_, err = s.GetUser(ctx, 999999)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresStore_SchedulePickup(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := createUser(t, s, "ravi", 0)

	d := &domain.Device{Category: domain.CategoryLaptop, Model: "T480", Condition: domain.ConditionGood, EstimatedPrice: 144, EcoPoints: 14}
	p := &domain.Pickup{UserID: u.ID, PickupDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC), Address: "12 Lake Rd"}
	require.NoError(t, s.SchedulePickup(ctx, d, p, domain.Credit{EcoPoints: 14, CarbonSaved: 140}))
	assert.NotZero(t, p.ID)
	assert.Equal(t, d.ID, p.DeviceID)

	got, err := s.GetPickup(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PickupPending, got.Status)
	require.NotNil(t, got.Device)
	assert.Equal(t, "T480", got.Device.Model)

	user, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 14, user.EcoPoints)
	assert.InDelta(t, 140.0, user.CarbonSaved, 1e-9)

	require.NoError(t, s.SetPickupStatus(ctx, p.ID, domain.PickupCollected))
	list, err := s.ListPickups(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.PickupCollected, list[0].Status)

	require.ErrorIs(t, s.SetPickupStatus(ctx, 999999, domain.PickupCollected), domain.ErrNotFound)
}

func TestPostgresStore_SchedulePickup_UnknownUserRollsBack(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	d := &domain.Device{Category: domain.CategoryLaptop, Condition: domain.ConditionGood}
	p := &domain.Pickup{UserID: 424242, PickupDate: time.Now()}
	err := s.SchedulePickup(ctx, d, p, domain.Credit{EcoPoints: 1})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgresStore_BulkPickups(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	u := createUser(t, s, "facilities", 0)

	b := testBulkPickup(u.ID, "Green Valley School")
	items := testBulkItems()
	require.NoError(t, s.CreateBulkPickup(ctx, b, items, domain.Credit{EcoPoints: 37, CarbonSaved: 460}))
	assert.NotZero(t, b.ID)
	assert.Equal(t, domain.BulkPending, b.Status)
	for _, it := range items {
		assert.NotZero(t, it.ID)
		assert.Equal(t, b.ID, it.BulkPickupID)
	}

	other := testBulkPickup(u.ID, "Harbor Clinic")
	other.TotalItems = 40
	require.NoError(t, s.CreateBulkPickup(ctx, other, nil, domain.Credit{}))

	user, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 37, user.EcoPoints)
	assert.InDelta(t, 460.0, user.CarbonSaved, 1e-9)

	stored, err := s.ListBulkItems(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "X1", stored[0].BrandModel)

	t.Run("filter by organization", func(t *testing.T) {
		org := "valley"
		list, total, err := s.ListBulkPickups(ctx, &store.BulkPickupQuery{Organization: &org})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, list, 1)
		assert.Equal(t, b.ID, list[0].ID)
	})

	t.Run("order by total items", func(t *testing.T) {
		list, total, err := s.ListBulkPickups(ctx, &store.BulkPickupQuery{OrderBy: "total_items", Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, list, 1)
		assert.Equal(t, other.ID, list[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		status := domain.BulkCollected
		team := "north"
		actual := 40
		got, err := s.UpdateBulkPickup(ctx, b.ID, domain.BulkPickupUpdate{
			Status:          &status,
			AssignedTeam:    &team,
			ActualEcoPoints: &actual,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.BulkCollected, got.Status)
		assert.Equal(t, "north", got.AssignedTeam)
		assert.Equal(t, 40, got.AwardedEcoPoints())

		_, err = s.UpdateBulkPickup(ctx, 999999, domain.BulkPickupUpdate{Status: &status})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("certificate is issued once", func(t *testing.T) {
		due, err := s.ListCertificatesDue(ctx, 10)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, b.ID, due[0].ID)

		at := time.Date(2026, 6, 2, 12, 0, 0, 0, time.UTC)
		require.NoError(t, s.SetBulkCertificate(ctx, b.ID, "ECO-BULK-ABCDEF12-1", at))
		require.ErrorIs(t, s.SetBulkCertificate(ctx, b.ID, "ECO-BULK-00000000-1", at), domain.ErrAlreadyIssued)
		require.ErrorIs(t, s.SetBulkCertificate(ctx, 999999, "x", at), domain.ErrNotFound)

		got, err := s.GetBulkPickup(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "ECO-BULK-ABCDEF12-1", got.CertificateNumber)
		require.NotNil(t, got.CertificateIssued)
		assert.True(t, got.CertificateIssued.Equal(at))

		due, err = s.ListCertificatesDue(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestPostgresStore_RedeemReward(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	rewards, err := s.ListRewards(ctx, true)
	require.NoError(t, err)
	require.NotEmpty(t, rewards)
	cheapest := rewards[0]
	priciest := rewards[len(rewards)-1]

	t.Run("debits points and stock", func(t *testing.T) {
		u := createUser(t, s, "saver", cheapest.PointsRequired+5)

		red, err := s.RedeemReward(ctx, u.ID, cheapest.ID)
		require.NoError(t, err)
		assert.Equal(t, cheapest.PointsRequired, red.PointsSpent)
		assert.Equal(t, domain.RedemptionPending, red.Status)

		user, err := s.GetUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, user.EcoPoints)

		after, err := s.ListRewards(ctx, true)
		require.NoError(t, err)
		assert.Equal(t, cheapest.Stock-1, after[0].Stock)
	})

	t.Run("insufficient points", func(t *testing.T) {
		u := createUser(t, s, "short", cheapest.PointsRequired-1)
		_, err := s.RedeemReward(ctx, u.ID, cheapest.ID)
		require.ErrorIs(t, err, domain.ErrInsufficientPoints)

		user, err := s.GetUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, cheapest.PointsRequired-1, user.EcoPoints, "failed redemption must not debit")
	})

	t.Run("out of stock", func(t *testing.T) {
		u := createUser(t, s, "collector", priciest.PointsRequired*(priciest.Stock+1))
		for range priciest.Stock {
			_, err := s.RedeemReward(ctx, u.ID, priciest.ID)
			require.NoError(t, err)
		}
		_, err := s.RedeemReward(ctx, u.ID, priciest.ID)
		require.ErrorIs(t, err, domain.ErrOutOfStock)
	})

	t.Run("unknown reward", func(t *testing.T) {
		u := createUser(t, s, "lost", 100)
		_, err := s.RedeemReward(ctx, u.ID, 999999)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
