package cmd

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/ecycle/internal/engine"
	notifyMocks "github.com/donaldgifford/ecycle/internal/notify/mocks"
	storeMocks "github.com/donaldgifford/ecycle/internal/store/mocks"
	"github.com/donaldgifford/ecycle/pkg/classify"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func newTestServer(t *testing.T) (*echo.Echo, *storeMocks.MockStore) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ms := storeMocks.NewMockStore(t)
	eng := engine.NewEngine(ms, notifyMocks.NewMockNotifier(t), engine.WithLogger(log))

	e, _ := newServer(serverDeps{
		engine:         eng,
		classifier:     classify.NewAdapter(classify.WithLogger(log)),
		log:            log,
		version:        "test",
		uploadDir:      t.TempDir(),
		maxUploadBytes: 1 << 20,
	})
	return e, ms
}

func TestNewServer_Routes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{name: "healthz", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK, wantBody: `"version":"test"`},
		{
			name:   "readyz",
			method: http.MethodGet,
			path:   "/readyz",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().Ping(mock.Anything).Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "ready",
		},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{name: "openapi", method: http.MethodGet, path: "/openapi.json", wantStatus: http.StatusOK, wantBody: "ecycle API"},
		{name: "swagger ui", method: http.MethodGet, path: "/swagger/index.html", wantStatus: http.StatusOK, wantBody: "SwaggerUIBundle"},
		{name: "categories", method: http.MethodGet, path: "/api/v1/categories", wantStatus: http.StatusOK, wantBody: "Laptop"},
		{
			name:   "bulk list",
			method: http.MethodGet,
			path:   "/api/v1/bulk-pickups",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListBulkPickups(mock.Anything, mock.Anything).
					Return([]domain.BulkPickup{}, 0, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":0`,
		},
		{name: "certificate page bad id", method: http.MethodGet, path: "/certificates/bulk/abc", wantStatus: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/watches", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, ms := newTestServer(t)
			if tt.setupMock != nil {
				tt.setupMock(ms)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, http.NoBody))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestNewServer_BulkPreviewURLEncoded(t *testing.T) {
	t.Parallel()

	e, _ := newTestServer(t)

	body := "ewaste_type[]=Laptop&quantity[]=2&condition[]=WORKING"
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bulk-pickups/preview", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"total_quantity":2`)
}
