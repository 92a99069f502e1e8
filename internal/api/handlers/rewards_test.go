package handlers_test

import (
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/donaldgifford/ecycle/internal/api/handlers"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func TestRewardsHandler_List(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	ms.EXPECT().ListRewards(mock.Anything, true).
		Return([]domain.Reward{{ID: 1, Name: "Plant a Tree", PointsRequired: 50, Active: true}}, nil).
		Once()

	_, api := humatest.New(t)
	handlers.RegisterRewardRoutes(api, handlers.NewRewardsHandler(eng))

	resp := api.Get("/api/v1/rewards")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"Plant a Tree"`)
}

func TestRewardsHandler_Redeem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "redeemed", wantStatus: http.StatusCreated},
		{name: "insufficient points", err: domain.ErrInsufficientPoints, wantStatus: http.StatusConflict},
		{name: "out of stock", err: domain.ErrOutOfStock, wantStatus: http.StatusConflict},
		{name: "inactive", err: domain.ErrRewardInactive, wantStatus: http.StatusConflict},
		{name: "unknown reward", err: domain.ErrNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			eng, ms, _ := newTestEngine(t)
			call := ms.EXPECT().RedeemReward(mock.Anything, int64(3), int64(2)).Once()
			if tt.err != nil {
				call.Return(nil, tt.err)
			} else {
				call.Return(&domain.Redemption{
					ID: 1, UserID: 3, RewardID: 2, PointsSpent: 100, Status: domain.RedemptionPending,
				}, nil)
			}

			_, api := humatest.New(t)
			handlers.RegisterRewardRoutes(api, handlers.NewRewardsHandler(eng))

			resp := api.Post("/api/v1/rewards/2/redeem", map[string]any{"user_id": 3})
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}

func TestStatusMapping_UnknownIsServerError(t *testing.T) {
	t.Parallel()

	eng, ms, _ := newTestEngine(t)
	ms.EXPECT().ListRewards(mock.Anything, true).Return(nil, assert.AnError).Once()

	_, api := humatest.New(t)
	handlers.RegisterRewardRoutes(api, handlers.NewRewardsHandler(eng))

	resp := api.Get("/api/v1/rewards")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "listing rewards failed")
}
