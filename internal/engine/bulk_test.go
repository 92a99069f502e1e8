package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/ecycle/internal/intake"
	"github.com/donaldgifford/ecycle/internal/metrics"
	"github.com/donaldgifford/ecycle/internal/notify"
	notifyMocks "github.com/donaldgifford/ecycle/internal/notify/mocks"
	"github.com/donaldgifford/ecycle/internal/store"
	storeMocks "github.com/donaldgifford/ecycle/internal/store/mocks"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func testBulkRequest() BulkPickupRequest {
	return BulkPickupRequest{
		UserID:             1,
		OrganizationName:   "Green Valley School",
		OrganizationType:   domain.OrgSchool,
		ContactPerson:      "R. Iyer",
		ContactEmail:       "facilities@gvs.example",
		ContactPhone:       "5550100",
		PickupAddress:      "1 School Lane",
		PreferredDate:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		RequestCertificate: true,
	}
}

func testFormSource() intake.Source {
	return intake.FormRows(intake.FormFields{
		Types:      []string{"Laptop", "Desktop-PC", "Smartphone", ""},
		Models:     []string{"ThinkPad", "", "", ""},
		Quantities: []string{"2", "1", "3", ""},
		Conditions: []string{"WORKING", "DAMAGED", "SCRAP", ""},
	})
}

func TestSubmitBulkPickup(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	before := ptestutil.ToFloat64(metrics.BulkPickupsSubmittedTotal)

	ms.EXPECT().
		CreateBulkPickup(mock.Anything, mock.Anything, mock.Anything, domain.Credit{EcoPoints: 49, CarbonSaved: 660}).
		Run(func(_ context.Context, b *domain.BulkPickup, items []domain.BulkItem, _ domain.Credit) {
			assert.Equal(t, 6, b.TotalItems)
			assert.Equal(t, 49, b.EstimatedEcoPoints)
			assert.Equal(t, domain.BulkPending, b.Status)
			assert.Equal(t, domain.OrgSchool, b.OrganizationType)
			require.Len(t, items, 3)
			assert.Equal(t, "ThinkPad", items[0].BrandModel)
			b.ID = 42
		}).
		Return(nil).Once()

	mn.EXPECT().
		NotifyBulkPickup(mock.Anything, mock.MatchedBy(func(p *notify.BulkPickupPayload) bool {
			return p.PickupID == 42 &&
				p.EcoPoints == 49 &&
				p.TotalItems == 6 &&
				p.SkippedRows == 1 &&
				p.URL == "https://ecycle.example/api/v1/bulk-pickups/42"
		})).
		Return(nil).Once()

	sub, err := eng.SubmitBulkPickup(context.Background(), testBulkRequest(), testFormSource())
	require.NoError(t, err)

	assert.Equal(t, int64(42), sub.Pickup.ID)
	assert.Len(t, sub.Items, 3)
	assert.Equal(t, 3, sub.Batch.Accepted())
	assert.Equal(t, 1, sub.Batch.Skipped())
	assert.InDelta(t, 660.0, sub.Batch.Totals.CarbonSaved, 1e-9)
	assert.Greater(t, ptestutil.ToFloat64(metrics.BulkPickupsSubmittedTotal), before)
}

func TestSubmitBulkPickup_MergesFileSource(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	csv := "Device Type,Model,Quantity,Condition,Notes\nRefrigerator,,1,working,\n"

	ms.EXPECT().
		CreateBulkPickup(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, b *domain.BulkPickup, items []domain.BulkItem, c domain.Credit) {
			require.Len(t, items, 4)
			assert.Equal(t, domain.Category("Refrigerator"), items[3].Category)
			assert.Equal(t, 7, b.TotalItems)
			assert.InDelta(t, 660.0+350, c.CarbonSaved, 1e-9)
		}).
		Return(nil).Once()
	mn.EXPECT().NotifyBulkPickup(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := eng.SubmitBulkPickup(context.Background(), testBulkRequest(),
		testFormSource(), intake.FileSource("items.csv", []byte(csv)))
	require.NoError(t, err)
}

func TestSubmitBulkPickup_DefaultsOrganizationType(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	req := testBulkRequest()
	req.OrganizationType = ""

	ms.EXPECT().
		CreateBulkPickup(mock.Anything, mock.MatchedBy(func(b *domain.BulkPickup) bool {
			return b.OrganizationType == domain.OrgOther
		}), mock.Anything, mock.Anything).
		Return(nil).Once()
	mn.EXPECT().NotifyBulkPickup(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := eng.SubmitBulkPickup(context.Background(), req)
	require.NoError(t, err)
}

func TestSubmitBulkPickup_StoreFailureSurfaces(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t) // no expectations: must not notify
	eng := newTestEngine(ms, mn)

	ms.EXPECT().
		CreateBulkPickup(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("serialization failure")).Once()

	sub, err := eng.SubmitBulkPickup(context.Background(), testBulkRequest(), testFormSource())
	require.Error(t, err)
	assert.Nil(t, sub)
	assert.Contains(t, err.Error(), "saving bulk pickup")
}

func TestSubmitBulkPickup_NotificationFailureIsAbsorbed(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	before := ptestutil.ToFloat64(metrics.NotificationFailuresTotal)

	ms.EXPECT().CreateBulkPickup(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
	mn.EXPECT().NotifyBulkPickup(mock.Anything, mock.Anything).Return(errors.New("discord returned 500")).Once()

	sub, err := eng.SubmitBulkPickup(context.Background(), testBulkRequest(), testFormSource())
	require.NoError(t, err)
	assert.NotNil(t, sub)
	assert.Greater(t, ptestutil.ToFloat64(metrics.NotificationFailuresTotal), before)
}

func TestPreviewBulk_DoesNotPersist(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))

	batch := eng.PreviewBulk(context.Background(), testFormSource(), intake.FileSource("x.pdf", []byte("%PDF")))
	assert.Equal(t, 3, batch.Accepted())
	assert.Equal(t, 49, batch.Totals.EcoPoints)
	require.Len(t, batch.FileFailures, 1)
	assert.Equal(t, "x.pdf", batch.FileFailures[0].Source)
}

func TestGetBulkPickup(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetBulkPickup(mock.Anything, int64(42)).Return(&domain.BulkPickup{ID: 42}, nil).Once()
	ms.EXPECT().ListBulkItems(mock.Anything, int64(42)).Return([]domain.BulkItem{{ID: 1}, {ID: 2}}, nil).Once()

	d, err := eng.GetBulkPickup(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), d.Pickup.ID)
	assert.Len(t, d.Items, 2)
}

func TestListBulkPickups_RejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))

	bad := domain.BulkPickupStatus("Lost")
	_, _, err := eng.ListBulkPickups(context.Background(), &store.BulkPickupQuery{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func statusPtr(s domain.BulkPickupStatus) *domain.BulkPickupStatus { return &s }

func TestUpdateBulkPickup_IssuesCertificateOnCollection(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	mn := notifyMocks.NewMockNotifier(t)
	eng := newTestEngine(ms, mn)

	before := ptestutil.ToFloat64(metrics.CertificatesIssuedTotal)

	update := domain.BulkPickupUpdate{Status: statusPtr(domain.BulkCollected)}
	ms.EXPECT().GetBulkPickup(mock.Anything, int64(42)).
		Return(&domain.BulkPickup{ID: 42, Status: domain.BulkScheduled, RequestCertificate: true}, nil).Once()
	ms.EXPECT().UpdateBulkPickup(mock.Anything, int64(42), update).
		Return(&domain.BulkPickup{
			ID: 42, Status: domain.BulkCollected, RequestCertificate: true,
			OrganizationName: "Green Valley School", EstimatedEcoPoints: 49,
		}, nil).Once()
	ms.EXPECT().
		SetBulkCertificate(mock.Anything, int64(42), mock.MatchedBy(func(n string) bool {
			return strings.HasPrefix(n, "ECO-BULK-") && strings.HasSuffix(n, "-42") && len(n) == len("ECO-BULK-XXXXXXXX-42")
		}), fixedNow).
		Return(nil).Once()
	ms.EXPECT().ListBulkItems(mock.Anything, int64(42)).
		Return([]domain.BulkItem{{Category: domain.CategoryLaptop, Quantity: 2, Condition: domain.BulkWorking}}, nil).Once()
	mn.EXPECT().
		NotifyCertificate(mock.Anything, mock.MatchedBy(func(c *notify.CertificatePayload) bool {
			return c.Holder == "Green Valley School" && c.TotalItems == 2 && c.EcoPoints == 49 &&
				c.URL == "https://ecycle.example/certificates/bulk/42"
		})).
		Return(nil).Once()

	b, err := eng.UpdateBulkPickup(context.Background(), 42, update)
	require.NoError(t, err)
	assert.NotEmpty(t, b.CertificateNumber)
	require.NotNil(t, b.CertificateIssued)
	assert.Equal(t, fixedNow, *b.CertificateIssued)
	assert.Greater(t, ptestutil.ToFloat64(metrics.CertificatesIssuedTotal), before)
}

func TestUpdateBulkPickup_NoCertificate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prev    domain.BulkPickup
		updated domain.BulkPickup
	}{
		{
			name:    "already collected",
			prev:    domain.BulkPickup{ID: 1, Status: domain.BulkCollected, RequestCertificate: true},
			updated: domain.BulkPickup{ID: 1, Status: domain.BulkCollected, RequestCertificate: true},
		},
		{
			name:    "certificate not requested",
			prev:    domain.BulkPickup{ID: 1, Status: domain.BulkScheduled},
			updated: domain.BulkPickup{ID: 1, Status: domain.BulkCollected},
		},
		{
			name:    "moved to verified",
			prev:    domain.BulkPickup{ID: 1, Status: domain.BulkPending, RequestCertificate: true},
			updated: domain.BulkPickup{ID: 1, Status: domain.BulkVerified, RequestCertificate: true},
		},
		{
			name:    "number already present",
			prev:    domain.BulkPickup{ID: 1, Status: domain.BulkScheduled, RequestCertificate: true},
			updated: domain.BulkPickup{ID: 1, Status: domain.BulkCollected, RequestCertificate: true, CertificateNumber: "ECO-BULK-0-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

			prev, updated := tt.prev, tt.updated
			ms.EXPECT().GetBulkPickup(mock.Anything, int64(1)).Return(&prev, nil).Once()
			ms.EXPECT().UpdateBulkPickup(mock.Anything, int64(1), mock.Anything).Return(&updated, nil).Once()

			_, err := eng.UpdateBulkPickup(context.Background(), 1, domain.BulkPickupUpdate{Status: &updated.Status})
			require.NoError(t, err)
		})
	}
}

func TestUpdateBulkPickup_CertificateFailureIsLogged(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	before := ptestutil.ToFloat64(metrics.CertificateFailuresTotal)

	ms.EXPECT().GetBulkPickup(mock.Anything, int64(7)).
		Return(&domain.BulkPickup{ID: 7, Status: domain.BulkScheduled, RequestCertificate: true}, nil).Once()
	ms.EXPECT().UpdateBulkPickup(mock.Anything, int64(7), mock.Anything).
		Return(&domain.BulkPickup{ID: 7, Status: domain.BulkCollected, RequestCertificate: true}, nil).Once()
	ms.EXPECT().SetBulkCertificate(mock.Anything, int64(7), mock.Anything, mock.Anything).
		Return(errors.New("connection reset")).Once()

	b, err := eng.UpdateBulkPickup(context.Background(), 7, domain.BulkPickupUpdate{Status: statusPtr(domain.BulkCollected)})
	require.NoError(t, err)
	assert.Empty(t, b.CertificateNumber)
	assert.Greater(t, ptestutil.ToFloat64(metrics.CertificateFailuresTotal), before)
}

func TestUpdateBulkPickup_Validation(t *testing.T) {
	t.Parallel()

	eng := newTestEngine(storeMocks.NewMockStore(t), notifyMocks.NewMockNotifier(t))

	_, err := eng.UpdateBulkPickup(context.Background(), 1, domain.BulkPickupUpdate{Status: statusPtr("Lost")})
	require.ErrorIs(t, err, ErrInvalidStatus)

	negative := -5
	_, err = eng.UpdateBulkPickup(context.Background(), 1, domain.BulkPickupUpdate{ActualEcoPoints: &negative})
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateBulkPickup_NotFound(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	eng := newTestEngine(ms, notifyMocks.NewMockNotifier(t))

	ms.EXPECT().GetBulkPickup(mock.Anything, int64(404)).Return(nil, domain.ErrNotFound).Once()

	team := "north"
	_, err := eng.UpdateBulkPickup(context.Background(), 404, domain.BulkPickupUpdate{AssignedTeam: &team})
	require.ErrorIs(t, err, domain.ErrNotFound)
}
