// Package intake turns bulk pickup inputs (inline form rows, CSV and XLSX
// uploads) into valued line items with running batch totals.
package intake

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/donaldgifford/ecycle/internal/metrics"
	"github.com/donaldgifford/ecycle/pkg/carbon"
	domain "github.com/donaldgifford/ecycle/pkg/types"
	"github.com/donaldgifford/ecycle/pkg/valuation"
)

// Column widths of the stored line item.
const (
	MaxCategoryLen   = 50
	MaxBrandModelLen = 100
	MaxQuantity      = 100000
)

// Skip reasons reported on RowResult.
const (
	ReasonEmptyRow        = "empty row"
	ReasonCategoryTooLong = "device type longer than 50 characters"
	ReasonQuantityTooBig  = "quantity above 100000"
)

var (
	tracer = otel.Tracer("github.com/donaldgifford/ecycle/internal/intake")
	meter  = otel.Meter("github.com/donaldgifford/ecycle/internal/intake")
)

// RowStatus is the outcome of one input row.
type RowStatus string

// Row outcomes.
const (
	RowAccepted RowStatus = "accepted"
	RowSkipped  RowStatus = "skipped"
)

// RowResult records what happened to one input row. Item is set only for
// accepted rows.
type RowResult struct {
	Source string           `json:"source"`
	Format Format           `json:"format"`
	Line   int              `json:"line"`
	Status RowStatus        `json:"status"`
	Reason string           `json:"reason,omitempty"`
	Item   *domain.BulkItem `json:"item,omitempty"`
}

// FileFailure is a source that contributed no rows because it could not be
// read.
type FileFailure struct {
	Source string `json:"source"`
	Format Format `json:"format"`
	Error  string `json:"error"`
}

// Totals are accumulated over accepted rows.
type Totals struct {
	Quantity       int     `json:"total_quantity"`
	EcoPoints      int     `json:"total_eco_points"`
	CarbonSaved    float64 `json:"total_carbon_saved"`
	EstimatedValue int     `json:"total_estimated_value"`
}

// Batch is the reconciled result of every source in one submission.
type Batch struct {
	Rows         []RowResult   `json:"rows"`
	FileFailures []FileFailure `json:"file_failures,omitempty"`
	Totals       Totals        `json:"totals"`
}

// Items returns the accepted line items in input order.
func (b *Batch) Items() []domain.BulkItem {
	items := make([]domain.BulkItem, 0, len(b.Rows))
	for _, r := range b.Rows {
		if r.Item != nil {
			items = append(items, *r.Item)
		}
	}
	return items
}

// Accepted returns the number of accepted rows.
func (b *Batch) Accepted() int {
	n := 0
	for _, r := range b.Rows {
		if r.Status == RowAccepted {
			n++
		}
	}
	return n
}

// Skipped returns the number of skipped rows.
func (b *Batch) Skipped() int {
	return len(b.Rows) - b.Accepted()
}

func (b *Batch) accept(src Source, line int, item domain.BulkItem) {
	b.Rows = append(b.Rows, RowResult{
		Source: src.Name,
		Format: src.Format,
		Line:   line,
		Status: RowAccepted,
		Item:   &item,
	})

	q := item.Quantity
	b.Totals.Quantity += q
	b.Totals.EcoPoints += item.EcoPointsPerUnit * q
	b.Totals.CarbonSaved += carbon.Saved(item.Category, q)
	b.Totals.EstimatedValue += item.EstimatedPricePerUnit * q
}

func (b *Batch) skip(src Source, line int, reason string) {
	b.Rows = append(b.Rows, RowResult{
		Source: src.Name,
		Format: src.Format,
		Line:   line,
		Status: RowSkipped,
		Reason: reason,
	})
}

// Reconciler values intake rows.
type Reconciler struct {
	table *valuation.Table
	log   *slog.Logger
	batch metric.Int64Histogram
}

// Option configures the Reconciler.
type Option func(*Reconciler)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reconciler) {
		r.log = l
	}
}

// WithTable sets the valuation table used to price rows.
func WithTable(t *valuation.Table) Option {
	return func(r *Reconciler) {
		r.table = t
	}
}

// NewReconciler creates a Reconciler with the default valuation table.
func NewReconciler(opts ...Option) *Reconciler {
	r := &Reconciler{
		table: valuation.New(),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	h, err := meter.Int64Histogram("ecycle.intake.batch.rows",
		metric.WithDescription("Rows per reconciled intake batch."),
	)
	if err != nil {
		r.log.Warn("creating intake histogram", "error", err)
	}
	r.batch = h

	return r
}

// Reconcile processes every row of every source in order. It never fails:
// bad rows are skipped with a reason and unreadable sources are recorded as
// file failures.
func (r *Reconciler) Reconcile(ctx context.Context, sources ...Source) *Batch {
	ctx, span := tracer.Start(ctx, "intake.Reconcile")
	defer span.End()

	batch := &Batch{Rows: []RowResult{}}

	for _, src := range sources {
		if src.Err != nil {
			r.log.Error("intake file unreadable",
				"source", src.Name,
				"format", src.Format,
				"error", src.Err,
			)
			metrics.IntakeFileFailuresTotal.WithLabelValues(string(src.Format)).Inc()
			batch.FileFailures = append(batch.FileFailures, FileFailure{
				Source: src.Name,
				Format: src.Format,
				Error:  src.Err.Error(),
			})
			continue
		}

		for _, raw := range src.Rows {
			item, reason := r.row(raw)
			if reason != "" {
				r.log.Warn("intake row skipped",
					"source", src.Name,
					"line", raw.Line,
					"reason", reason,
				)
				metrics.IntakeRowsTotal.WithLabelValues(string(src.Format), string(RowSkipped)).Inc()
				batch.skip(src, raw.Line, reason)
				continue
			}
			metrics.IntakeRowsTotal.WithLabelValues(string(src.Format), string(RowAccepted)).Inc()
			batch.accept(src, raw.Line, item)
		}
	}

	span.SetAttributes(
		attribute.Int("intake.sources", len(sources)),
		attribute.Int("intake.rows.accepted", batch.Accepted()),
		attribute.Int("intake.rows.skipped", batch.Skipped()),
		attribute.Int("intake.file_failures", len(batch.FileFailures)),
	)
	if r.batch != nil {
		r.batch.Record(ctx, int64(len(batch.Rows)))
	}

	return batch
}

// row converts raw into a valued item, or returns a skip reason.
func (r *Reconciler) row(raw RawRow) (domain.BulkItem, string) {
	if raw.Err != nil {
		return domain.BulkItem{}, raw.Err.Error()
	}
	if raw.blank() {
		return domain.BulkItem{}, ReasonEmptyRow
	}

	category := clean(raw.get(ColumnDeviceType))
	if category == "" || category == "nan" {
		category = string(domain.CategoryOther)
	}
	if utf8.RuneCountInString(category) > MaxCategoryLen {
		return domain.BulkItem{}, ReasonCategoryTooLong
	}

	quantity := ParseQuantity(raw.get(ColumnQuantity))
	if quantity > MaxQuantity {
		return domain.BulkItem{}, ReasonQuantityTooBig
	}

	cond := ParseCondition(raw.get(ColumnCondition))
	cat := domain.Category(category)
	v := r.table.Bulk(cat, cond)

	return domain.BulkItem{
		Category:              cat,
		BrandModel:            truncate(clean(raw.get(ColumnModel)), MaxBrandModelLen),
		Quantity:              quantity,
		Condition:             cond,
		Notes:                 clean(raw.get(ColumnNotes)),
		EstimatedPricePerUnit: v.EstimatedPrice,
		EcoPointsPerUnit:      v.EcoPoints,
	}, ""
}

// ParseQuantity reads a quantity cell. Blank or unparseable input is 1,
// decimals are truncated and the result is never below 1.
func ParseQuantity(s string) int {
	s = strings.TrimSpace(s)

	q, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil || math.IsNaN(f) {
			return 1
		}
		q = int(max(min(f, math.MaxInt32), math.MinInt32))
	}

	return max(q, 1)
}

// ParseCondition maps a free-form condition onto the bulk vocabulary. Blank
// is Working; otherwise the uppercased value is matched by substring.
func ParseCondition(s string) domain.BulkCondition {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch {
	case s == "", strings.Contains(s, "WORK"):
		return domain.BulkWorking
	case strings.Contains(s, "DAMAGE"):
		return domain.BulkDamaged
	default:
		return domain.BulkScrap
	}
}

// clean trims s and drops non-printable runes.
func clean(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s))
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
