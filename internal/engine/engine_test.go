package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/ecycle/internal/metrics"
	notifyMocks "github.com/donaldgifford/ecycle/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/ecycle/internal/store/mocks"
	domain "github.com/donaldgifford/ecycle/pkg/types"
	"github.com/donaldgifford/ecycle/pkg/valuation"
)

var fixedNow = time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)

// quietLogger returns a logger that discards output for tests.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(
	s *storeMocks.MockStore,
	n *notifyMocks.MockNotifier,
	opts ...EngineOption,
) *Engine {
	opts = append([]EngineOption{
		WithLogger(quietLogger()),
		WithClock(func() time.Time { return fixedNow }),
		WithBaseURL("https://ecycle.example/"),
	}, opts...)
	return NewEngine(s, n, opts...)
}

func TestNewEngine_Defaults(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	eng := NewEngine(ms, mn)
	assert.Equal(t, defaultBackfillBatch, eng.backfillBatch)
	assert.NotNil(t, eng.log)
	assert.NotNil(t, eng.table)
	assert.NotNil(t, eng.reconciler)
	assert.NotNil(t, eng.now)
	assert.Same(t, ms, eng.Store())
}

func TestNewEngine_WithOptions(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)

	l := quietLogger()
	tbl := valuation.New()
	eng := NewEngine(ms, mn,
		WithLogger(l),
		WithTable(tbl),
		WithBackfillBatch(5),
		WithBaseURL("https://ecycle.example///"),
	)

	assert.Same(t, l, eng.log)
	assert.Same(t, tbl, eng.table)
	assert.Equal(t, 5, eng.backfillBatch)
	assert.Equal(t, "https://ecycle.example", eng.baseURL)
	assert.Equal(t, "https://ecycle.example/certificates/bulk/3", eng.link("/certificates/bulk/%d", 3))

	WithBackfillBatch(0)(eng)
	assert.Equal(t, 5, eng.backfillBatch, "non-positive batch sizes are ignored")
}

func TestQuote(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))

	tests := []struct {
		name       string
		req        QuoteRequest
		wantPrice  int
		wantPoints int
		wantTotal  int
		wantKg     float64
		wantKnown  bool
	}{
		{
			name:       "individual laptop in good condition",
			req:        QuoteRequest{Category: domain.CategoryLaptop, IndividualCondition: domain.ConditionGood, Quantity: 1},
			wantPrice:  144,
			wantPoints: 14,
			wantTotal:  14,
			wantKg:     140,
			wantKnown:  true,
		},
		{
			name:       "bulk smartphones for scrap",
			req:        QuoteRequest{Category: domain.CategorySmartphone, Bulk: true, BulkCondition: domain.BulkScrap, Quantity: 3},
			wantPrice:  35,
			wantPoints: 3,
			wantTotal:  9,
			wantKg:     180,
			wantKnown:  true,
		},
		{
			name:       "unknown category uses defaults and clamps quantity",
			req:        QuoteRequest{Category: "Hoverboard", IndividualCondition: "Mint", Quantity: 0},
			wantPrice:  30,
			wantPoints: 3,
			wantTotal:  3,
			wantKg:     40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := eng.Quote(tt.req)
			assert.Equal(t, tt.wantPrice, q.Valuation.EstimatedPrice)
			assert.Equal(t, tt.wantPoints, q.Valuation.EcoPoints)
			assert.Equal(t, tt.wantTotal, q.TotalEcoPoints)
			assert.Equal(t, tt.wantPrice*max(tt.req.Quantity, 1), q.TotalPrice)
			assert.InDelta(t, tt.wantKg, q.Carbon.KgCO2Saved, 1e-9)
			assert.Equal(t, tt.wantKnown, q.Known)
		})
	}
}

func TestCategories(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))
	cats := eng.Categories()
	require.Len(t, cats, len(domain.Categories))

	byName := make(map[domain.Category]CategoryInfo, len(cats))
	for _, c := range cats {
		byName[c.Category] = c
	}
	assert.Equal(t, CategoryInfo{Category: "Laptop", BasePrice: 120, Priced: true, KgCO2PerUnit: 140}, byName["Laptop"])
	assert.Equal(t, 350.0, byName["Refrigerator"].KgCO2PerUnit)
}

func TestSchedulePickup(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	before := ptestutil.ToFloat64(metrics.PickupsScheduledTotal)

	date := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	ms.EXPECT().
		SchedulePickup(mock.Anything, mock.Anything, mock.Anything, domain.Credit{EcoPoints: 14, CarbonSaved: 140}).
		Run(func(_ context.Context, d *domain.Device, p *domain.Pickup, _ domain.Credit) {
			assert.Equal(t, 144, d.EstimatedPrice)
			assert.Equal(t, 14, d.EcoPoints)
			assert.Equal(t, "laptop", d.ClassificationLabel)
			assert.Equal(t, domain.PickupPending, p.Status)
			assert.Equal(t, date, p.PickupDate)
			d.ID, p.ID, p.DeviceID = 3, 9, 3
		}).
		Return(nil).Once()

	p, err := eng.SchedulePickup(context.Background(), PickupRequest{
		UserID:              1,
		Category:            domain.CategoryLaptop,
		Condition:           domain.ConditionGood,
		PickupDate:          date,
		Address:             "12 Lake Rd",
		ClassificationLabel: "laptop",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.ID)
	assert.Greater(t, ptestutil.ToFloat64(metrics.PickupsScheduledTotal), before)
}

func TestSchedulePickup_StoreError(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().
		SchedulePickup(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.ErrNotFound).Once()

	_, err := eng.SchedulePickup(context.Background(), PickupRequest{UserID: 404, Category: "Laptop"})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "scheduling pickup")
}

func TestListPickups_UnknownUser(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetUser(mock.Anything, int64(5)).Return(nil, domain.ErrNotFound).Once()

	_, err := eng.ListPickups(context.Background(), 5)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetPickupStatus(t *testing.T) {
	t.Parallel()

	t.Run("collected", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))
		ms.EXPECT().SetPickupStatus(mock.Anything, int64(9), domain.PickupCollected).Return(nil).Once()

		require.NoError(t, eng.SetPickupStatus(context.Background(), 9, domain.PickupCollected))
	})

	t.Run("unknown status never reaches the store", func(t *testing.T) {
		t.Parallel()

		eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))
		err := eng.SetPickupStatus(context.Background(), 9, "Lost")
		require.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestRedeemReward(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		outcome string
	}{
		{name: "redeemed", outcome: "redeemed"},
		{name: "insufficient points", err: domain.ErrInsufficientPoints, outcome: "insufficient_points"},
		{name: "out of stock", err: domain.ErrOutOfStock, outcome: "out_of_stock"},
		{name: "inactive", err: domain.ErrRewardInactive, outcome: "inactive"},
		{name: "unknown reward", err: domain.ErrNotFound, outcome: "not_found"},
		{name: "database error", err: errors.New("connection reset"), outcome: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

			counter := metrics.RedemptionsTotal.WithLabelValues(tt.outcome)
			before := ptestutil.ToFloat64(counter)

			var red *domain.Redemption
			if tt.err == nil {
				red = &domain.Redemption{ID: 1, UserID: 2, RewardID: 3, PointsSpent: 50}
			}
			ms.EXPECT().RedeemReward(mock.Anything, int64(2), int64(3)).Return(red, tt.err).Once()

			got, err := eng.RedeemReward(context.Background(), 2, 3)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, 50, got.PointsSpent)
			}
			assert.Greater(t, ptestutil.ToFloat64(counter), before)
		})
	}
}

func TestListRewards_ActiveOnly(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().ListRewards(mock.Anything, true).Return([]domain.Reward{{ID: 1, Active: true}}, nil).Once()

	rewards, err := eng.ListRewards(context.Background())
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}
