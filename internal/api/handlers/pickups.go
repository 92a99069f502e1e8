package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/ecycle/internal/certificate"
	"github.com/donaldgifford/ecycle/internal/engine"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// PickupsHandler handles individual device pickups.
type PickupsHandler struct {
	engine *engine.Engine
}

// NewPickupsHandler creates a new PickupsHandler.
func NewPickupsHandler(eng *engine.Engine) *PickupsHandler {
	return &PickupsHandler{engine: eng}
}

// SchedulePickupInput is the request body for an individual pickup.
type SchedulePickupInput struct {
	Body struct {
		UserID              int64     `json:"user_id"                        minimum:"1"`
		Category            string    `json:"category"                       doc:"Device category label"  example:"Laptop"`
		Model               string    `json:"model,omitempty"                maxLength:"100"`
		RAM                 string    `json:"ram,omitempty"                  maxLength:"20"`
		Condition           string    `json:"condition"                      enum:"Excellent,Good,Fair,Poor"`
		PickupDate          time.Time `json:"pickup_date"                    doc:"RFC 3339 pickup time"`
		Address             string    `json:"address"                        minLength:"1"`
		ClassificationLabel string    `json:"classification_label,omitempty" doc:"Raw label from /classify"`
		ImagePath           string    `json:"image_path,omitempty"           doc:"Stored image from /classify"`
	}
}

// PickupIDInput selects a pickup by path.
type PickupIDInput struct {
	ID int64 `path:"id" doc:"Pickup ID"`
}

// PickupOutput is a single pickup with its device.
type PickupOutput struct {
	Body *domain.Pickup
}

// SetPickupStatusInput is the request for an admin status change.
type SetPickupStatusInput struct {
	ID   int64 `path:"id" doc:"Pickup ID"`
	Body struct {
		Status string `json:"status" enum:"Pending,Collected"`
	}
}

// CertificateOutput is a certificate summary.
type CertificateOutput struct {
	Body *certificate.Summary
}

// Schedule values the device and schedules its pickup.
func (h *PickupsHandler) Schedule(ctx context.Context, input *SchedulePickupInput) (*PickupOutput, error) {
	b := input.Body
	if b.Category == "" {
		return nil, huma.Error400BadRequest("category is required")
	}

	p, err := h.engine.SchedulePickup(ctx, engine.PickupRequest{
		UserID:              b.UserID,
		Category:            domain.Category(b.Category),
		Model:               b.Model,
		RAM:                 b.RAM,
		Condition:           domain.IndividualCondition(b.Condition),
		PickupDate:          b.PickupDate,
		Address:             b.Address,
		ClassificationLabel: b.ClassificationLabel,
		ImagePath:           b.ImagePath,
	})
	if err != nil {
		return nil, humaError("scheduling pickup failed", err)
	}
	return &PickupOutput{Body: p}, nil
}

// Get returns a pickup with its device.
func (h *PickupsHandler) Get(ctx context.Context, input *PickupIDInput) (*PickupOutput, error) {
	p, err := h.engine.GetPickup(ctx, input.ID)
	if err != nil {
		return nil, humaError("getting pickup failed", err)
	}
	return &PickupOutput{Body: p}, nil
}

// SetStatus changes an individual pickup's status.
func (h *PickupsHandler) SetStatus(ctx context.Context, input *SetPickupStatusInput) (*struct{}, error) {
	if err := h.engine.SetPickupStatus(ctx, input.ID, domain.PickupStatus(input.Body.Status)); err != nil {
		return nil, humaError("setting pickup status failed", err)
	}
	return nil, nil
}

// Certificate returns the certificate summary for a collected pickup.
func (h *PickupsHandler) Certificate(ctx context.Context, input *PickupIDInput) (*CertificateOutput, error) {
	s, err := h.engine.PickupCertificate(ctx, input.ID)
	if err != nil {
		return nil, humaError("building certificate failed", err)
	}
	return &CertificateOutput{Body: s}, nil
}

// RegisterPickupRoutes registers individual pickup endpoints with the Huma
// API.
func RegisterPickupRoutes(api huma.API, h *PickupsHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "schedule-pickup",
		Method:        http.MethodPost,
		Path:          "/api/v1/pickups",
		Summary:       "Schedule a pickup",
		Description:   "Values one device, stores it with its pickup and credits the user's eco points and carbon savings.",
		Tags:          []string{"pickups"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.Schedule)

	huma.Register(api, huma.Operation{
		OperationID: "get-pickup",
		Method:      http.MethodGet,
		Path:        "/api/v1/pickups/{id}",
		Summary:     "Get a pickup",
		Tags:        []string{"pickups"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID:   "set-pickup-status",
		Method:        http.MethodPut,
		Path:          "/api/v1/pickups/{id}/status",
		Summary:       "Set pickup status",
		Tags:          []string{"pickups", "admin"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusUnprocessableEntity},
	}, h.SetStatus)

	huma.Register(api, huma.Operation{
		OperationID: "get-pickup-certificate",
		Method:      http.MethodGet,
		Path:        "/api/v1/pickups/{id}/certificate",
		Summary:     "Get a pickup certificate",
		Description: "Returns the recycling certificate summary for a collected pickup.",
		Tags:        []string{"pickups", "certificates"},
		Errors:      []int{http.StatusNotFound, http.StatusConflict},
	}, h.Certificate)
}
