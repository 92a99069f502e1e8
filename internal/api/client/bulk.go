package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/donaldgifford/ecycle/internal/certificate"
	"github.com/donaldgifford/ecycle/internal/engine"
	"github.com/donaldgifford/ecycle/internal/intake"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// BulkRow is one inline item of a bulk submission.
type BulkRow struct {
	Type      string
	Model     string
	Quantity  string
	Condition string
	Notes     string
}

// BulkForm is a bulk submission. Organization fields are ignored by preview.
type BulkForm struct {
	Fields map[string]string
	Rows   []BulkRow
	File   *FormFile
}

func (f BulkForm) values() map[string][]string {
	out := make(map[string][]string, len(f.Fields)+5)
	for k, v := range f.Fields {
		out[k] = []string{v}
	}
	for _, r := range f.Rows {
		out["ewaste_type[]"] = append(out["ewaste_type[]"], r.Type)
		out["brand_model[]"] = append(out["brand_model[]"], r.Model)
		out["quantity[]"] = append(out["quantity[]"], r.Quantity)
		out["condition[]"] = append(out["condition[]"], r.Condition)
		out["notes[]"] = append(out["notes[]"], r.Notes)
	}
	return out
}

func (f BulkForm) files() []FormFile {
	if f.File == nil {
		return nil
	}
	file := *f.File
	file.Field = "ewaste_file"
	return []FormFile{file}
}

// PreviewBulk reconciles rows and a file without saving anything.
func (c *Client) PreviewBulk(ctx context.Context, f BulkForm) (*intake.Batch, error) {
	var b intake.Batch
	if err := c.postForm(ctx, "/api/v1/bulk-pickups/preview", f.values(), f.files(), &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// SubmitBulk stores a bulk pickup.
func (c *Client) SubmitBulk(ctx context.Context, f BulkForm) (*engine.BulkSubmission, error) {
	var sub engine.BulkSubmission
	if err := c.postForm(ctx, "/api/v1/bulk-pickups", f.values(), f.files(), &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// BulkListParams filters a bulk pickup listing. Zero values are omitted.
type BulkListParams struct {
	Status       string
	UserID       int64
	Organization string
	Limit        int
	Offset       int
	OrderBy      string
}

// BulkList is a page of bulk pickups.
type BulkList struct {
	BulkPickups []domain.BulkPickup `json:"bulk_pickups"`
	Total       int                 `json:"total"`
	Limit       int                 `json:"limit"`
	Offset      int                 `json:"offset"`
}

// ListBulkPickups returns a filtered page of bulk pickups.
func (c *Client) ListBulkPickups(ctx context.Context, p BulkListParams) (*BulkList, error) {
	q := url.Values{}
	if p.Status != "" {
		q.Set("status", p.Status)
	}
	if p.UserID != 0 {
		q.Set("user_id", strconv.FormatInt(p.UserID, 10))
	}
	if p.Organization != "" {
		q.Set("organization", p.Organization)
	}
	if p.Limit != 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset != 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.OrderBy != "" {
		q.Set("order_by", p.OrderBy)
	}

	path := "/api/v1/bulk-pickups"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var out BulkList
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBulkPickup returns a bulk pickup with its items.
func (c *Client) GetBulkPickup(ctx context.Context, id int64) (*engine.BulkPickupDetail, error) {
	var d engine.BulkPickupDetail
	if err := c.get(ctx, fmt.Sprintf("/api/v1/bulk-pickups/%d", id), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// BulkUpdate is an admin update. Nil fields are left unchanged.
type BulkUpdate struct {
	Status          *string `json:"status,omitempty"`
	AssignedTeam    *string `json:"assigned_team,omitempty"`
	ActualEcoPoints *int    `json:"actual_eco_points,omitempty"`
}

// UpdateBulkPickup applies an admin update.
func (c *Client) UpdateBulkPickup(ctx context.Context, id int64, u BulkUpdate) (*domain.BulkPickup, error) {
	var b domain.BulkPickup
	if err := c.patch(ctx, fmt.Sprintf("/api/v1/bulk-pickups/%d", id), u, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// BulkCertificate returns the certificate summary of a collected bulk pickup.
func (c *Client) BulkCertificate(ctx context.Context, id int64) (*certificate.Summary, error) {
	var s certificate.Summary
	if err := c.get(ctx, fmt.Sprintf("/api/v1/bulk-pickups/%d/certificate", id), &s); err != nil {
		return nil, err
	}
	return &s, nil
}
