package client

import (
	"context"

	"github.com/donaldgifford/ecycle/internal/engine"
)

// QuoteRequest is the body of a quote.
type QuoteRequest struct {
	Category  string `json:"category"`
	Condition string `json:"condition,omitempty"`
	Bulk      bool   `json:"bulk,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// Quote prices a device without storing anything.
func (c *Client) Quote(ctx context.Context, req QuoteRequest) (*engine.Quote, error) {
	var q engine.Quote
	if err := c.post(ctx, "/api/v1/valuations", req, &q); err != nil {
		return nil, err
	}
	return &q, nil
}

// Categories returns the category vocabulary with base prices and carbon
// figures.
func (c *Client) Categories(ctx context.Context) ([]engine.CategoryInfo, error) {
	var out []engine.CategoryInfo
	if err := c.get(ctx, "/api/v1/categories", &out); err != nil {
		return nil, err
	}
	return out, nil
}
