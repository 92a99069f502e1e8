package client

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// ListRewards returns the active reward catalog.
func (c *Client) ListRewards(ctx context.Context) ([]domain.Reward, error) {
	var out []domain.Reward
	if err := c.get(ctx, "/api/v1/rewards", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RedeemReward spends a user's points on a reward.
func (c *Client) RedeemReward(ctx context.Context, userID, rewardID int64) (*domain.Redemption, error) {
	var r domain.Redemption
	body := map[string]int64{"user_id": userID}
	if err := c.post(ctx, fmt.Sprintf("/api/v1/rewards/%d/redeem", rewardID), body, &r); err != nil {
		return nil, err
	}
	return &r, nil
}
