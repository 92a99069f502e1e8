// Package certificate builds recycling certificate summaries for individual
// and bulk pickups.
package certificate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/ecycle/pkg/carbon"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// MaxLines is the number of item rows printed before the rest are folded
// into a single "+ N more items" row.
const MaxLines = 10

// Kind distinguishes individual and bulk certificates.
type Kind string

// Certificate kinds.
const (
	KindIndividual Kind = "individual"
	KindBulk       Kind = "bulk"
)

// Field is one labelled value in a certificate's information table.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Line is one row of a bulk certificate's item table.
type Line struct {
	Label       string  `json:"label"`
	Quantity    int     `json:"quantity"`
	Condition   string  `json:"condition"`
	CarbonSaved float64 `json:"carbon_saved"`
}

// Summary is everything printed on a certificate.
type Summary struct {
	Kind        Kind      `json:"kind"`
	Number      string    `json:"certificate_number"`
	IssuedAt    time.Time `json:"issued_at"`
	Holder      string    `json:"holder"`
	Reference   string    `json:"reference"`
	Details     []Field   `json:"details"`
	TotalItems  int       `json:"total_items"`
	EcoPoints   int       `json:"eco_points"`
	CarbonSaved float64   `json:"carbon_saved"`
	CarbonText  string    `json:"carbon_text"`
	Lines       []Line    `json:"lines,omitempty"`
}

// Title is the certificate heading.
func (s *Summary) Title() string {
	if s.Kind == KindBulk {
		return "Bulk E-Waste Disposal Certificate"
	}
	return "E-Waste Disposal Certificate"
}

// NewNumber returns a fresh individual certificate number for pickup id.
func NewNumber(id int64) string {
	return number("ECO", uuid.New(), id)
}

// NewBulkNumber returns a fresh bulk certificate number for bulk pickup id.
func NewBulkNumber(id int64) string {
	return number("ECO-BULK", uuid.New(), id)
}

func number(prefix string, u uuid.UUID, id int64) string {
	hex := strings.ReplaceAll(u.String(), "-", "")
	return fmt.Sprintf("%s-%s-%d", prefix, strings.ToUpper(hex[:8]), id)
}

// Individual builds the certificate for one collected device. A blank number
// is replaced with a fresh one.
func Individual(p *domain.Pickup, u *domain.User, num string, issuedAt time.Time) *Summary {
	if num == "" {
		num = NewNumber(p.ID)
	}

	d := p.Device
	if d == nil {
		d = &domain.Device{}
	}
	saved := carbon.Saved(d.Category, 1)

	model := d.Model
	if model == "" {
		model = "Not specified"
	}

	return &Summary{
		Kind:      KindIndividual,
		Number:    num,
		IssuedAt:  issuedAt,
		Holder:    u.Username,
		Reference: fmt.Sprintf("#%d", p.ID),
		Details: []Field{
			{Label: "E-Waste Type", Value: displayCategory(d.Category)},
			{Label: "Model/Brand", Value: model},
			{Label: "Condition", Value: string(d.Condition)},
			{Label: "Pickup Date", Value: formatDate(p.PickupDate)},
			{Label: "Pickup Reference", Value: fmt.Sprintf("#%d", p.ID)},
		},
		TotalItems:  1,
		EcoPoints:   d.EcoPoints,
		CarbonSaved: saved,
		CarbonText:  carbon.Format(saved),
	}
}

// Bulk builds the certificate for a bulk pickup. Item and carbon totals are
// recomputed from items; eco points are the actual figure when set. The
// stored certificate number is used when present.
func Bulk(b *domain.BulkPickup, items []domain.BulkItem, issuedAt time.Time) *Summary {
	num := b.CertificateNumber
	if num == "" {
		num = NewBulkNumber(b.ID)
	}
	if b.CertificateIssued != nil {
		issuedAt = *b.CertificateIssued
	}

	details := []Field{
		{Label: "Organization Name", Value: b.OrganizationName},
		{Label: "Organization Type", Value: string(b.OrganizationType)},
		{Label: "Contact Person", Value: b.ContactPerson},
		{Label: "Contact Email", Value: b.ContactEmail},
		{Label: "Pickup Date", Value: formatDate(b.PreferredDate)},
		{Label: "Pickup Reference", Value: fmt.Sprintf("#%d", b.ID)},
	}
	if b.GSTIN != "" {
		details = append(details, Field{Label: "GSTIN/ID", Value: b.GSTIN})
	}

	var totalItems int
	var saved float64
	for _, it := range items {
		totalItems += it.Quantity
		saved += carbon.Saved(it.Category, it.Quantity)
	}

	return &Summary{
		Kind:        KindBulk,
		Number:      num,
		IssuedAt:    issuedAt,
		Holder:      b.OrganizationName,
		Reference:   fmt.Sprintf("#%d", b.ID),
		Details:     details,
		TotalItems:  totalItems,
		EcoPoints:   b.AwardedEcoPoints(),
		CarbonSaved: saved,
		CarbonText:  carbon.Format(saved),
		Lines:       Lines(items),
	}
}

// Lines renders items as table rows, folding everything past MaxLines into a
// single summary row.
func Lines(items []domain.BulkItem) []Line {
	shown := items[:min(len(items), MaxLines)]
	lines := make([]Line, 0, len(shown)+1)
	for _, it := range shown {
		lines = append(lines, Line{
			Label:       displayCategory(it.Category),
			Quantity:    it.Quantity,
			Condition:   it.Condition.Label(),
			CarbonSaved: carbon.Saved(it.Category, it.Quantity),
		})
	}

	if rest := items[len(shown):]; len(rest) > 0 {
		more := Line{
			Label:     fmt.Sprintf("+ %d more items", len(rest)),
			Condition: "(Various)",
		}
		for _, it := range rest {
			more.Quantity += it.Quantity
			more.CarbonSaved += carbon.Saved(it.Category, it.Quantity)
		}
		lines = append(lines, more)
	}

	return lines
}

func displayCategory(c domain.Category) string {
	return strings.ReplaceAll(string(c), "-", " ")
}

func formatDate(t time.Time) string {
	return t.Format("January 02, 2006")
}
