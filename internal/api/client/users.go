package client

import (
	"context"
	"fmt"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// CreateUser registers a user.
func (c *Client) CreateUser(ctx context.Context, username, email string) (*domain.User, error) {
	var u domain.User
	body := map[string]string{"username": username, "email": email}
	if err := c.post(ctx, "/api/v1/users", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns a user's counters.
func (c *Client) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d", id), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUserPickups returns a user's individual pickups.
func (c *Client) ListUserPickups(ctx context.Context, id int64) ([]domain.Pickup, error) {
	var out []domain.Pickup
	if err := c.get(ctx, fmt.Sprintf("/api/v1/users/%d/pickups", id), &out); err != nil {
		return nil, err
	}
	return out, nil
}
