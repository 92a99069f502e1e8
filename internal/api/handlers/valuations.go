package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/ecycle/internal/engine"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// ValuationsHandler serves quotes and the category vocabulary.
type ValuationsHandler struct {
	engine *engine.Engine
}

// NewValuationsHandler creates a new ValuationsHandler.
func NewValuationsHandler(eng *engine.Engine) *ValuationsHandler {
	return &ValuationsHandler{engine: eng}
}

// QuoteInput is the request body for a quote. Condition is read from the
// individual vocabulary unless bulk is set.
type QuoteInput struct {
	Body struct {
		Category  string `json:"category"           doc:"Device category label"                            example:"Laptop"`
		Condition string `json:"condition,omitempty" doc:"Excellent/Good/Fair/Poor, or WORKING/DAMAGED/SCRAP" example:"Good"`
		Bulk      bool   `json:"bulk,omitempty"      doc:"Price on the bulk intake path"`
		Quantity  int    `json:"quantity,omitempty"  doc:"Units (default 1)"                                minimum:"0"`
	}
}

// QuoteOutput is the priced quote.
type QuoteOutput struct {
	Body engine.Quote
}

// CategoriesOutput lists every canonical category.
type CategoriesOutput struct {
	Body []engine.CategoryInfo
}

// Quote prices a device without storing anything.
func (h *ValuationsHandler) Quote(_ context.Context, input *QuoteInput) (*QuoteOutput, error) {
	if input.Body.Category == "" {
		return nil, huma.Error400BadRequest("category is required")
	}

	req := engine.QuoteRequest{
		Category: domain.Category(input.Body.Category),
		Bulk:     input.Body.Bulk,
		Quantity: input.Body.Quantity,
	}
	if req.Bulk {
		req.BulkCondition = domain.BulkCondition(input.Body.Condition)
	} else {
		req.IndividualCondition = domain.IndividualCondition(input.Body.Condition)
	}

	return &QuoteOutput{Body: h.engine.Quote(req)}, nil
}

// Categories returns the vocabulary with base price and carbon per unit.
func (h *ValuationsHandler) Categories(_ context.Context, _ *struct{}) (*CategoriesOutput, error) {
	return &CategoriesOutput{Body: h.engine.Categories()}, nil
}

// RegisterValuationRoutes registers quote and category endpoints with the
// Huma API.
func RegisterValuationRoutes(api huma.API, h *ValuationsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "quote",
		Method:      http.MethodPost,
		Path:        "/api/v1/valuations",
		Summary:     "Quote a device",
		Description: "Returns estimated price, eco points and carbon savings for a category and condition on either intake path.",
		Tags:        []string{"valuations"},
		Errors:      []int{http.StatusBadRequest},
	}, h.Quote)

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns every canonical device category with its base price and carbon savings per unit.",
		Tags:        []string{"valuations"},
	}, h.Categories)
}
