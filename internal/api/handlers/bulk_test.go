package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/ecycle/internal/api/handlers"
	"github.com/donaldgifford/ecycle/internal/store"
	storeMocks "github.com/donaldgifford/ecycle/internal/store/mocks"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func newBulkAPI(t *testing.T) (humatest.TestAPI, *storeMocks.MockStore) {
	t.Helper()

	eng, ms, _ := newTestEngine(t)
	_, api := humatest.New(t)
	handlers.RegisterBulkRoutes(api, handlers.NewBulkHandler(eng))
	return api, ms
}

func TestBulkHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "filters are passed through",
			path: "/api/v1/bulk-pickups?status=Pending&user_id=3&organization=valley&limit=10&offset=20&order_by=total_items",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListBulkPickups(mock.Anything, mock.MatchedBy(func(q *store.BulkPickupQuery) bool {
						return q.Status != nil && *q.Status == domain.BulkPending &&
							q.UserID != nil && *q.UserID == 3 &&
							q.Organization != nil && *q.Organization == "valley" &&
							q.Limit == 10 && q.Offset == 20 && q.OrderBy == "total_items"
					})).
					Return([]domain.BulkPickup{{ID: 1, OrganizationName: "Green Valley School"}}, 31, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":31`,
		},
		{
			name: "no filters returns empty list",
			path: "/api/v1/bulk-pickups",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListBulkPickups(mock.Anything, mock.MatchedBy(func(q *store.BulkPickupQuery) bool {
						return q.Status == nil && q.UserID == nil && q.Organization == nil
					})).
					Return(nil, 0, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"bulk_pickups":[]`,
		},
		{
			name:       "unknown status",
			path:       "/api/v1/bulk-pickups?status=Lost",
			setupMock:  func(*storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error",
			path: "/api/v1/bulk-pickups",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListBulkPickups(mock.Anything, mock.Anything).
					Return(nil, 0, errors.New("db down")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing bulk pickups failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms := newBulkAPI(t)
			tt.setupMock(ms)

			resp := api.Get(tt.path)
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestBulkHandler_Get(t *testing.T) {
	t.Parallel()

	api, ms := newBulkAPI(t)
	ms.EXPECT().GetBulkPickup(mock.Anything, int64(8)).
		Return(&domain.BulkPickup{ID: 8, Status: domain.BulkScheduled}, nil).
		Once()
	ms.EXPECT().ListBulkItems(mock.Anything, int64(8)).Return(nil, nil).Once()

	resp := api.Get("/api/v1/bulk-pickups/8")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var got struct {
		Pickup domain.BulkPickup `json:"pickup"`
		Items  []domain.BulkItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, int64(8), got.Pickup.ID)
	assert.NotNil(t, got.Items)
}

func TestBulkHandler_GetNotFound(t *testing.T) {
	t.Parallel()

	api, ms := newBulkAPI(t)
	ms.EXPECT().GetBulkPickup(mock.Anything, int64(8)).Return(nil, domain.ErrNotFound).Once()

	resp := api.Get("/api/v1/bulk-pickups/8")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBulkHandler_Update(t *testing.T) {
	t.Parallel()

	api, ms := newBulkAPI(t)
	ms.EXPECT().GetBulkPickup(mock.Anything, int64(8)).
		Return(&domain.BulkPickup{ID: 8, Status: domain.BulkPending}, nil).
		Once()
	ms.EXPECT().
		UpdateBulkPickup(mock.Anything, int64(8), mock.MatchedBy(func(u domain.BulkPickupUpdate) bool {
			return u.Status != nil && *u.Status == domain.BulkScheduled &&
				u.AssignedTeam != nil && *u.AssignedTeam == "North Crew" &&
				u.ActualEcoPoints == nil
		})).
		Return(&domain.BulkPickup{ID: 8, Status: domain.BulkScheduled, AssignedTeam: "North Crew"}, nil).
		Once()

	resp := api.Patch("/api/v1/bulk-pickups/8", map[string]any{
		"status":        "Scheduled",
		"assigned_team": "North Crew",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.Contains(t, resp.Body.String(), `"North Crew"`)
}

func TestBulkHandler_UpdateRejectsNegativePoints(t *testing.T) {
	t.Parallel()

	api, _ := newBulkAPI(t)
	resp := api.Patch("/api/v1/bulk-pickups/8", map[string]any{"actual_eco_points": -5})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestBulkHandler_Certificate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     domain.BulkPickupStatus
		wantStatus int
	}{
		{name: "collected", status: domain.BulkCollected, wantStatus: http.StatusOK},
		{name: "verified", status: domain.BulkVerified, wantStatus: http.StatusOK},
		{name: "pending", status: domain.BulkPending, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api, ms := newBulkAPI(t)
			ms.EXPECT().GetBulkPickup(mock.Anything, int64(8)).
				Return(&domain.BulkPickup{ID: 8, OrganizationName: "Civic Office", Status: tt.status}, nil).
				Once()
			if tt.wantStatus == http.StatusOK {
				ms.EXPECT().ListBulkItems(mock.Anything, int64(8)).
					Return([]domain.BulkItem{{Category: domain.CategoryLaptop, Quantity: 2}}, nil).
					Once()
			}

			resp := api.Get("/api/v1/bulk-pickups/8/certificate")
			require.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
			if tt.wantStatus == http.StatusOK {
				assert.Contains(t, resp.Body.String(), `"kind":"bulk"`)
				assert.Contains(t, resp.Body.String(), `"total_items":2`)
			}
		})
	}
}
