package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/ecycle/internal/api/handlers"
	storeMocks "github.com/donaldgifford/ecycle/internal/store/mocks"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func TestCertificatePageHandler_Bulk(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	ms.EXPECT().GetBulkPickup(mock.Anything, int64(42)).
		Return(&domain.BulkPickup{
			ID:                42,
			OrganizationName:  "Green Valley School",
			Status:            domain.BulkCollected,
			CertificateNumber: "ECO-BULK-1A2B3C4D-42",
		}, nil).
		Once()
	ms.EXPECT().ListBulkItems(mock.Anything, int64(42)).
		Return([]domain.BulkItem{{Category: domain.CategoryLaptop, Quantity: 2}}, nil).
		Once()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/certificates/bulk/42", http.NoBody), rec)
	c.SetParamNames("id")
	c.SetParamValues("42")

	require.NoError(t, handlers.NewCertificatePageHandler(eng).Bulk(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), "ECO-BULK-1A2B3C4D-42")
	assert.Contains(t, rec.Body.String(), "Green Valley School")
}

func TestCertificatePageHandler_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		id         string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
	}{
		{name: "invalid id", id: "abc", wantStatus: http.StatusBadRequest},
		{
			name: "not found",
			id:   "7",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPickup(mock.Anything, int64(7)).Return(nil, domain.ErrNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "not collected",
			id:   "7",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetPickup(mock.Anything, int64(7)).
					Return(&domain.Pickup{ID: 7, Status: domain.PickupPending}, nil).Once()
			},
			wantStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, ms, _ := newTestEngine(t)
			if tt.setupMock != nil {
				tt.setupMock(ms)
			}

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/certificates/pickups/"+tt.id, http.NoBody), rec)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			require.NoError(t, handlers.NewCertificatePageHandler(eng).Pickup(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
