package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/ecycle/internal/engine"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// RewardsHandler handles the reward catalog and redemptions.
type RewardsHandler struct {
	engine *engine.Engine
}

// NewRewardsHandler creates a new RewardsHandler.
func NewRewardsHandler(eng *engine.Engine) *RewardsHandler {
	return &RewardsHandler{engine: eng}
}

// RewardsOutput is the active reward catalog.
type RewardsOutput struct {
	Body []domain.Reward
}

// RedeemInput is the request to spend a user's points on a reward.
type RedeemInput struct {
	ID   int64 `path:"id" doc:"Reward ID"`
	Body struct {
		UserID int64 `json:"user_id" minimum:"1"`
	}
}

// RedeemOutput is the recorded redemption.
type RedeemOutput struct {
	Body *domain.Redemption
}

// List returns active rewards.
func (h *RewardsHandler) List(ctx context.Context, _ *struct{}) (*RewardsOutput, error) {
	rewards, err := h.engine.ListRewards(ctx)
	if err != nil {
		return nil, humaError("listing rewards failed", err)
	}
	if rewards == nil {
		rewards = []domain.Reward{}
	}
	return &RewardsOutput{Body: rewards}, nil
}

// Redeem debits the user's points and the reward's stock.
func (h *RewardsHandler) Redeem(ctx context.Context, input *RedeemInput) (*RedeemOutput, error) {
	red, err := h.engine.RedeemReward(ctx, input.Body.UserID, input.ID)
	if err != nil {
		return nil, humaError("redeeming reward failed", err)
	}
	return &RedeemOutput{Body: red}, nil
}

// RegisterRewardRoutes registers reward endpoints with the Huma API.
func RegisterRewardRoutes(api huma.API, h *RewardsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-rewards",
		Method:      http.MethodGet,
		Path:        "/api/v1/rewards",
		Summary:     "List rewards",
		Tags:        []string{"rewards"},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID:   "redeem-reward",
		Method:        http.MethodPost,
		Path:          "/api/v1/rewards/{id}/redeem",
		Summary:       "Redeem a reward",
		Description:   "Spends the user's eco points on a reward. Fails when the reward is inactive, out of stock, or the balance is too low.",
		Tags:          []string{"rewards"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusNotFound, http.StatusConflict},
	}, h.Redeem)
}
