package client

import (
	"context"
	"fmt"
	"time"

	"github.com/donaldgifford/ecycle/internal/certificate"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// PickupRequest is the body of an individual pickup.
type PickupRequest struct {
	UserID              int64     `json:"user_id"`
	Category            string    `json:"category"`
	Model               string    `json:"model,omitempty"`
	RAM                 string    `json:"ram,omitempty"`
	Condition           string    `json:"condition"`
	PickupDate          time.Time `json:"pickup_date"`
	Address             string    `json:"address"`
	ClassificationLabel string    `json:"classification_label,omitempty"`
	ImagePath           string    `json:"image_path,omitempty"`
}

// SchedulePickup values and schedules one device.
func (c *Client) SchedulePickup(ctx context.Context, req PickupRequest) (*domain.Pickup, error) {
	var p domain.Pickup
	if err := c.post(ctx, "/api/v1/pickups", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPickup returns a pickup with its device.
func (c *Client) GetPickup(ctx context.Context, id int64) (*domain.Pickup, error) {
	var p domain.Pickup
	if err := c.get(ctx, fmt.Sprintf("/api/v1/pickups/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// SetPickupStatus changes an individual pickup's status.
func (c *Client) SetPickupStatus(ctx context.Context, id int64, status domain.PickupStatus) error {
	body := map[string]string{"status": string(status)}
	return c.put(ctx, fmt.Sprintf("/api/v1/pickups/%d/status", id), body, nil)
}

// PickupCertificate returns the certificate summary of a collected pickup.
func (c *Client) PickupCertificate(ctx context.Context, id int64) (*certificate.Summary, error) {
	var s certificate.Summary
	if err := c.get(ctx, fmt.Sprintf("/api/v1/pickups/%d/certificate", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// CertificatePage returns the printable HTML certificate. Kind is "bulk" or
// "pickups".
func (c *Client) CertificatePage(ctx context.Context, kind string, id int64) ([]byte, error) {
	var page []byte
	if err := c.get(ctx, fmt.Sprintf("/certificates/%s/%d", kind, id), &page); err != nil {
		return nil, err
	}
	return page, nil
}
