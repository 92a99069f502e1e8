package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/donaldgifford/ecycle/internal/certificate"
	"github.com/donaldgifford/ecycle/internal/engine"
	"github.com/donaldgifford/ecycle/internal/intake"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

const dateLayout = "2006-01-02 15:04"

func printQuote(w io.Writer, q *engine.Quote) error {
	tw := newTabWriter(w)
	tw.writef("Category:\t%s\n", q.Valuation.Category)
	if !q.Known {
		tw.writef("Note:\tunrecognized category, priced as Other\n")
	}
	tw.writef("Base Price:\t₹%d\n", q.Valuation.BasePrice)
	tw.writef("Multiplier:\t%.2f\n", q.Valuation.Multiplier)
	tw.writef("Unit Price:\t₹%d\n", q.Valuation.EstimatedPrice)
	tw.writef("Unit Points:\t%d\n", q.Valuation.EcoPoints)
	tw.writef("Quantity:\t%d\n", q.Carbon.Quantity)
	tw.writef("Total Price:\t₹%d\n", q.TotalPrice)
	tw.writef("Total Points:\t%d\n", q.TotalEcoPoints)
	tw.writef("CO2 Saved:\t%.1f kg\n", q.Carbon.KgCO2Saved)
	return tw.finish()
}

func printCategoriesTable(w io.Writer, cats []engine.CategoryInfo) error {
	tw := newTabWriter(w)
	tw.writef("CATEGORY\tBASE PRICE\tPRICED\tKG CO2/UNIT\n")
	for i := range cats {
		tw.writef("%s\t₹%d\t%v\t%.1f\n",
			cats[i].Category,
			cats[i].BasePrice,
			cats[i].Priced,
			cats[i].KgCO2PerUnit,
		)
	}
	return tw.finish()
}

func printUserDetail(w io.Writer, u *domain.User) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", u.ID)
	tw.writef("Username:\t%s\n", u.Username)
	tw.writef("Email:\t%s\n", u.Email)
	tw.writef("Eco Points:\t%d\n", u.EcoPoints)
	tw.writef("CO2 Saved:\t%.1f kg\n", u.CarbonSaved)
	return tw.finish()
}

func printPickupsTable(w io.Writer, pickups []domain.Pickup) error {
	tw := newTabWriter(w)
	tw.writef("ID\tCATEGORY\tPRICE\tPOINTS\tDATE\tSTATUS\n")
	for i := range pickups {
		p := &pickups[i]
		category, price, points := "-", "-", "-"
		if p.Device != nil {
			category = string(p.Device.Category)
			price = fmt.Sprintf("₹%d", p.Device.EstimatedPrice)
			points = fmt.Sprintf("%d", p.Device.EcoPoints)
		}
		tw.writef("%d\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, category, price, points, p.PickupDate.Format(dateLayout), p.Status)
	}
	return tw.finish()
}

func printPickupDetail(w io.Writer, p *domain.Pickup) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", p.ID)
	tw.writef("User:\t%d\n", p.UserID)
	tw.writef("Date:\t%s\n", p.PickupDate.Format(dateLayout))
	tw.writef("Address:\t%s\n", p.Address)
	tw.writef("Status:\t%s\n", p.Status)
	if d := p.Device; d != nil {
		tw.writef("Category:\t%s\n", d.Category)
		if d.Model != "" {
			tw.writef("Model:\t%s\n", d.Model)
		}
		tw.writef("Condition:\t%s\n", d.Condition)
		tw.writef("Price:\t₹%d\n", d.EstimatedPrice)
		tw.writef("Eco Points:\t%d\n", d.EcoPoints)
	}
	return tw.finish()
}

func printBatch(w io.Writer, b *intake.Batch) error {
	tw := newTabWriter(w)
	tw.writef("SOURCE\tLINE\tSTATUS\tCATEGORY\tQTY\tCONDITION\tREASON\n")
	for _, r := range b.Rows {
		category, qty, condition := "-", "-", "-"
		if r.Item != nil {
			category = string(r.Item.Category)
			qty = fmt.Sprintf("%d", r.Item.Quantity)
			condition = string(r.Item.Condition)
		}
		tw.writef("%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Source, r.Line, r.Status, category, qty, condition, truncate(r.Reason, 40))
	}
	for _, f := range b.FileFailures {
		tw.writef("%s\t-\tfailed\t-\t-\t-\t%s\n", f.Source, truncate(f.Error, 40))
	}
	tw.writef("\nAccepted:\t%d\n", b.Accepted())
	tw.writef("Skipped:\t%d\n", b.Skipped())
	tw.writef("Total Items:\t%d\n", b.Totals.Quantity)
	tw.writef("Eco Points:\t%d\n", b.Totals.EcoPoints)
	tw.writef("CO2 Saved:\t%.1f kg\n", b.Totals.CarbonSaved)
	tw.writef("Estimated Value:\t₹%d\n", b.Totals.EstimatedValue)
	return tw.finish()
}

func printBulkPickupsTable(w io.Writer, pickups []domain.BulkPickup) error {
	tw := newTabWriter(w)
	tw.writef("ID\tORGANIZATION\tTYPE\tITEMS\tPOINTS\tDATE\tSTATUS\n")
	for i := range pickups {
		b := &pickups[i]
		tw.writef("%d\t%s\t%s\t%d\t%d\t%s\t%s\n",
			b.ID,
			truncate(b.OrganizationName, 30),
			b.OrganizationType,
			b.TotalItems,
			b.EstimatedEcoPoints,
			b.PreferredDate.Format(dateLayout),
			b.Status,
		)
	}
	return tw.finish()
}

func printBulkPickupDetail(w io.Writer, d *engine.BulkPickupDetail) error {
	b := d.Pickup
	tw := newTabWriter(w)
	tw.writef("ID:\t%d\n", b.ID)
	tw.writef("Organization:\t%s (%s)\n", b.OrganizationName, b.OrganizationType)
	tw.writef("Contact:\t%s <%s> %s\n", b.ContactPerson, b.ContactEmail, b.ContactPhone)
	tw.writef("Address:\t%s\n", b.PickupAddress)
	tw.writef("Preferred Date:\t%s\n", b.PreferredDate.Format(dateLayout))
	tw.writef("Status:\t%s\n", b.Status)
	if b.AssignedTeam != "" {
		tw.writef("Team:\t%s\n", b.AssignedTeam)
	}
	tw.writef("Total Items:\t%d\n", b.TotalItems)
	tw.writef("Estimated Points:\t%d\n", b.EstimatedEcoPoints)
	if b.ActualEcoPoints != nil {
		tw.writef("Actual Points:\t%d\n", *b.ActualEcoPoints)
	}
	if b.CertificateNumber != "" {
		tw.writef("Certificate:\t%s\n", b.CertificateNumber)
	}
	if len(d.Items) > 0 {
		tw.writef("\nCATEGORY\tMODEL\tQTY\tCONDITION\tUNIT PRICE\tUNIT POINTS\n")
		for _, it := range d.Items {
			tw.writef("%s\t%s\t%d\t%s\t₹%d\t%d\n",
				it.Category, truncate(it.BrandModel, 30), it.Quantity, it.Condition,
				it.EstimatedPricePerUnit, it.EcoPointsPerUnit)
		}
	}
	return tw.finish()
}

func printRewardsTable(w io.Writer, rewards []domain.Reward) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tTYPE\tPOINTS\tSTOCK\n")
	for i := range rewards {
		tw.writef("%d\t%s\t%s\t%d\t%d\n",
			rewards[i].ID,
			truncate(rewards[i].Name, 40),
			rewards[i].RewardType,
			rewards[i].PointsRequired,
			rewards[i].Stock,
		)
	}
	return tw.finish()
}

func printClassification(w io.Writer, c *domain.Classification, imagePath string) error {
	tw := newTabWriter(w)
	tw.writef("Category:\t%s\n", c.Category)
	tw.writef("Label:\t%s\n", c.RawLabel)
	tw.writef("Confidence:\t%.0f%%\n", c.Confidence*100)
	tw.writef("Source:\t%s\n", c.Source)
	if c.FallbackReason != "" {
		tw.writef("Fallback:\t%s\n", c.FallbackReason)
	}
	if imagePath != "" {
		tw.writef("Stored:\t%s\n", imagePath)
	}
	tw.writef("Recycling:\t%s\n", c.RecyclingInfo)
	return tw.finish()
}

func printCertificate(w io.Writer, s *certificate.Summary) error {
	tw := newTabWriter(w)
	tw.writef("%s\n\n", s.Title())
	tw.writef("Number:\t%s\n", s.Number)
	tw.writef("Issued:\t%s\n", s.IssuedAt.Format(time.DateOnly))
	tw.writef("Holder:\t%s\n", s.Holder)
	tw.writef("Reference:\t%s\n", s.Reference)
	for _, f := range s.Details {
		tw.writef("%s:\t%s\n", f.Label, f.Value)
	}
	tw.writef("Total Items:\t%d\n", s.TotalItems)
	tw.writef("Eco Points:\t%d\n", s.EcoPoints)
	tw.writef("Environmental Impact:\t%s\n", s.CarbonText)
	if len(s.Lines) > 0 {
		tw.writef("\nITEM\tQTY\tCONDITION\tKG CO2\n")
		for _, l := range s.Lines {
			tw.writef("%s\t%d\t%s\t%.1f\n", l.Label, l.Quantity, l.Condition, l.CarbonSaved)
		}
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
