package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/ecycle/internal/engine"
	"github.com/donaldgifford/ecycle/internal/store"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// BulkHandler handles bulk pickup queries and admin updates. Submission is
// multipart and lives in BulkUploadHandler.
type BulkHandler struct {
	engine *engine.Engine
}

// NewBulkHandler creates a new BulkHandler.
func NewBulkHandler(eng *engine.Engine) *BulkHandler {
	return &BulkHandler{engine: eng}
}

// ListBulkPickupsInput filters the bulk pickup listing.
type ListBulkPickupsInput struct {
	Status       string `query:"status"       doc:"Filter by status"                 enum:"Pending,Scheduled,Collected,Verified,Cancelled"`
	UserID       int64  `query:"user_id"      doc:"Filter by submitting user"`
	Organization string `query:"organization" doc:"Case-insensitive organization substring"`
	Limit        int    `query:"limit"        doc:"Number of results (default 50)"  minimum:"0" maximum:"500"`
	Offset       int    `query:"offset"       doc:"Pagination offset"               minimum:"0"`
	OrderBy      string `query:"order_by"     doc:"Sort field"                       enum:"created_at,preferred_date,total_items"`
}

// ListBulkPickupsOutput is a page of bulk pickups.
type ListBulkPickupsOutput struct {
	Body struct {
		BulkPickups []domain.BulkPickup `json:"bulk_pickups"`
		Total       int                 `json:"total"`
		Limit       int                 `json:"limit"`
		Offset      int                 `json:"offset"`
	}
}

// BulkIDInput selects a bulk pickup by path.
type BulkIDInput struct {
	ID int64 `path:"id" doc:"Bulk pickup ID"`
}

// BulkPickupOutput is a bulk pickup with its items.
type BulkPickupOutput struct {
	Body *engine.BulkPickupDetail
}

// UpdateBulkPickupInput is the admin update. Omitted fields are unchanged.
type UpdateBulkPickupInput struct {
	ID   int64 `path:"id" doc:"Bulk pickup ID"`
	Body struct {
		Status          *string `json:"status,omitempty"            enum:"Pending,Scheduled,Collected,Verified,Cancelled"`
		AssignedTeam    *string `json:"assigned_team,omitempty"     maxLength:"100"`
		ActualEcoPoints *int    `json:"actual_eco_points,omitempty" minimum:"0"`
	}
}

// UpdateBulkPickupOutput is the updated bulk pickup.
type UpdateBulkPickupOutput struct {
	Body *domain.BulkPickup
}

// List returns bulk pickups with optional filters and pagination.
func (h *BulkHandler) List(ctx context.Context, input *ListBulkPickupsInput) (*ListBulkPickupsOutput, error) {
	q := &store.BulkPickupQuery{
		Limit:   input.Limit,
		Offset:  input.Offset,
		OrderBy: input.OrderBy,
	}
	if input.Status != "" {
		s := domain.BulkPickupStatus(input.Status)
		q.Status = &s
	}
	if input.UserID != 0 {
		q.UserID = &input.UserID
	}
	if input.Organization != "" {
		q.Organization = &input.Organization
	}

	pickups, total, err := h.engine.ListBulkPickups(ctx, q)
	if err != nil {
		return nil, humaError("listing bulk pickups failed", err)
	}
	if pickups == nil {
		pickups = []domain.BulkPickup{}
	}

	resp := &ListBulkPickupsOutput{}
	resp.Body.BulkPickups = pickups
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// Get returns a bulk pickup with its items.
func (h *BulkHandler) Get(ctx context.Context, input *BulkIDInput) (*BulkPickupOutput, error) {
	d, err := h.engine.GetBulkPickup(ctx, input.ID)
	if err != nil {
		return nil, humaError("getting bulk pickup failed", err)
	}
	if d.Items == nil {
		d.Items = []domain.BulkItem{}
	}
	return &BulkPickupOutput{Body: d}, nil
}

// Update applies an admin update and issues the certificate on collection.
func (h *BulkHandler) Update(ctx context.Context, input *UpdateBulkPickupInput) (*UpdateBulkPickupOutput, error) {
	u := domain.BulkPickupUpdate{
		AssignedTeam:    input.Body.AssignedTeam,
		ActualEcoPoints: input.Body.ActualEcoPoints,
	}
	if input.Body.Status != nil {
		s := domain.BulkPickupStatus(*input.Body.Status)
		u.Status = &s
	}

	b, err := h.engine.UpdateBulkPickup(ctx, input.ID, u)
	if err != nil {
		return nil, humaError("updating bulk pickup failed", err)
	}
	return &UpdateBulkPickupOutput{Body: b}, nil
}

// Certificate returns the certificate summary for a collected bulk pickup.
func (h *BulkHandler) Certificate(ctx context.Context, input *BulkIDInput) (*CertificateOutput, error) {
	s, err := h.engine.BulkCertificate(ctx, input.ID)
	if err != nil {
		return nil, humaError("building certificate failed", err)
	}
	return &CertificateOutput{Body: s}, nil
}

// RegisterBulkRoutes registers bulk pickup query and admin endpoints with
// the Huma API.
func RegisterBulkRoutes(api huma.API, h *BulkHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-bulk-pickups",
		Method:      http.MethodGet,
		Path:        "/api/v1/bulk-pickups",
		Summary:     "List bulk pickups",
		Description: "Returns bulk pickups with optional filters for status, user and organization.",
		Tags:        []string{"bulk-pickups"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.List)

	huma.Register(api, huma.Operation{
		OperationID: "get-bulk-pickup",
		Method:      http.MethodGet,
		Path:        "/api/v1/bulk-pickups/{id}",
		Summary:     "Get a bulk pickup",
		Tags:        []string{"bulk-pickups"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "update-bulk-pickup",
		Method:      http.MethodPatch,
		Path:        "/api/v1/bulk-pickups/{id}",
		Summary:     "Update a bulk pickup",
		Description: "Changes status, assigned team or actual eco points. Moving to Collected issues a requested certificate.",
		Tags:        []string{"bulk-pickups", "admin"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID: "get-bulk-certificate",
		Method:      http.MethodGet,
		Path:        "/api/v1/bulk-pickups/{id}/certificate",
		Summary:     "Get a bulk certificate",
		Description: "Returns the disposal certificate summary with totals recomputed from the stored items.",
		Tags:        []string{"bulk-pickups", "certificates"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict},
	}, h.Certificate)
}
