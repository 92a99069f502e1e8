package intake

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestReconciler() *Reconciler {
	return NewReconciler(WithLogger(quietLogger()))
}

func TestReconcile_Totals(t *testing.T) {
	t.Parallel()

	form := FormRows(FormFields{
		Types:      []string{"Laptop", "Desktop-PC"},
		Models:     []string{"ThinkPad T480", "OptiPlex"},
		Quantities: []string{"2", "1"},
		Conditions: []string{"WORKING", "DAMAGED"},
	})
	file := CSV("more.csv", []byte("Device Type,Model,Quantity,Condition,Notes\n"+
		"Smartphone,Pixel 3,3,scrap,cracked\n"))

	batch := newTestReconciler().Reconcile(context.Background(), form, file)

	require.Len(t, batch.Rows, 3)
	assert.Equal(t, 3, batch.Accepted())
	assert.Zero(t, batch.Skipped())
	assert.Empty(t, batch.FileFailures)

	items := batch.Items()
	require.Len(t, items, 3)

	assert.Equal(t, domain.BulkItem{
		Category:              "Laptop",
		BrandModel:            "ThinkPad T480",
		Quantity:              2,
		Condition:             domain.BulkWorking,
		EstimatedPricePerUnit: 144,
		EcoPointsPerUnit:      14,
	}, items[0])
	assert.Equal(t, 120, items[1].EstimatedPricePerUnit)
	assert.Equal(t, 12, items[1].EcoPointsPerUnit)
	assert.Equal(t, domain.BulkScrap, items[2].Condition)
	assert.Equal(t, 35, items[2].EstimatedPricePerUnit)
	assert.Equal(t, "cracked", items[2].Notes)

	// 2 laptops + 1 desktop + 3 phones.
	assert.Equal(t, 6, batch.Totals.Quantity)
	assert.Equal(t, 14*2+12+3*3, batch.Totals.EcoPoints)
	assert.Equal(t, 144*2+120+35*3, batch.Totals.EstimatedValue)
	assert.InDelta(t, 140.0*2+200+60*3, batch.Totals.CarbonSaved, 1e-9)

	assert.Equal(t, "form", batch.Rows[0].Source)
	assert.Equal(t, FormatCSV, batch.Rows[2].Format)
	assert.Equal(t, 2, batch.Rows[2].Line)
}

func TestReconcile_MalformedQuantityDefaultsToOne(t *testing.T) {
	t.Parallel()

	good := "Laptop,A,2,Working,\n"
	for k := range 5 {
		t.Run(fmt.Sprintf("row %d malformed", k), func(t *testing.T) {
			t.Parallel()

			var b strings.Builder
			b.WriteString("Device Type,Model,Quantity,Condition,Notes\n")
			for i := range 5 {
				if i == k {
					b.WriteString("Laptop,A,lots,Working,\n")
					continue
				}
				b.WriteString(good)
			}

			batch := newTestReconciler().Reconcile(context.Background(), CSV("q.csv", []byte(b.String())))

			require.Len(t, batch.Rows, 5)
			assert.Equal(t, 5, batch.Accepted())
			assert.Equal(t, 1, batch.Rows[k].Item.Quantity)
			assert.Equal(t, 4*2+1, batch.Totals.Quantity)
		})
	}
}

func TestReconcile_Deterministic(t *testing.T) {
	t.Parallel()

	data := []byte("Device Type,Model,Quantity,Condition,Notes\n" +
		"Laptop,X,2,Working,\n" +
		"Refrigerator,,1,Damaged,\n" +
		"Hoverboard,,7,,\n")

	r := newTestReconciler()
	first := r.Reconcile(context.Background(), CSV("a.csv", data))
	second := r.Reconcile(context.Background(), CSV("a.csv", data))

	assert.Equal(t, first.Totals, second.Totals)
	assert.Equal(t, first.Rows, second.Rows)
}

func TestReconcile_SkippedRows(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", MaxCategoryLen+1)
	data := []byte("Device Type,Model,Quantity,Condition,Notes\n" +
		",,,,\n" +
		long + ",,1,,\n" +
		"Laptop,,100001,,\n" +
		"Laptop,Dell \"XPS\",1,,\n" +
		"Laptop,,100000,,\n")

	batch := newTestReconciler().Reconcile(context.Background(), CSV("skips.csv", data))

	require.Len(t, batch.Rows, 5)
	assert.Equal(t, 1, batch.Accepted())
	assert.Equal(t, 4, batch.Skipped())

	assert.Equal(t, ReasonEmptyRow, batch.Rows[0].Reason)
	assert.Equal(t, ReasonCategoryTooLong, batch.Rows[1].Reason)
	assert.Equal(t, ReasonQuantityTooBig, batch.Rows[2].Reason)
	assert.Contains(t, batch.Rows[3].Reason, "parsing csv record")
	for _, r := range batch.Rows[:4] {
		assert.Equal(t, RowSkipped, r.Status)
		assert.Nil(t, r.Item)
	}

	assert.Equal(t, RowAccepted, batch.Rows[4].Status)
	assert.Equal(t, MaxQuantity, batch.Totals.Quantity)
}

func TestReconcile_BlankTypeBecomesOther(t *testing.T) {
	t.Parallel()

	form := FormRows(FormFields{
		Types:      []string{"Laptop", ""},
		Models:     []string{"", "Dell"},
		Quantities: []string{"", "3"},
		Conditions: []string{"", "DAMAGED"},
	})
	file := CSV("inventory.csv", []byte("Device Type,Model,Quantity,Condition,Notes\n,Dell,3,DAMAGED,\n"))

	batch := newTestReconciler().Reconcile(context.Background(), form, file)

	require.Len(t, batch.Rows, 3)
	for _, r := range batch.Rows {
		assert.Equal(t, RowAccepted, r.Status, "line %d: %s", r.Line, r.Reason)
	}

	fromForm, fromFile := batch.Rows[1].Item, batch.Rows[2].Item
	require.NotNil(t, fromForm)
	require.NotNil(t, fromFile)
	assert.Equal(t, domain.CategoryOther, fromForm.Category)
	assert.Equal(t, 3, fromForm.Quantity)
	assert.Equal(t, domain.BulkDamaged, fromForm.Condition)
	assert.Equal(t, "Dell", fromForm.BrandModel)

	assert.Equal(t, *fromFile, *fromForm)
}

func TestReconcile_FileDefaults(t *testing.T) {
	t.Parallel()

	data := buildWorkbook(t, [][]any{
		{"Device Type", "Model", "Quantity", "Condition", "Notes"},
		{"", "mystery box", nil, nil, nil},
		{"nan", "", 0, "Working", ""},
		{"Laptop", "", 2.9, "lightly damaged", ""},
		{"Laptop", "", -4, "broken", ""},
	})

	batch := newTestReconciler().Reconcile(context.Background(), Spreadsheet("d.xlsx", data))
	items := batch.Items()
	require.Len(t, items, 4)

	assert.Equal(t, domain.CategoryOther, items[0].Category)
	assert.Equal(t, 1, items[0].Quantity)
	assert.Equal(t, domain.BulkWorking, items[0].Condition)
	assert.Equal(t, 36, items[0].EstimatedPricePerUnit)

	assert.Equal(t, domain.CategoryOther, items[1].Category)
	assert.Equal(t, 1, items[1].Quantity)

	assert.Equal(t, 2, items[2].Quantity)
	assert.Equal(t, domain.BulkDamaged, items[2].Condition)

	assert.Equal(t, 1, items[3].Quantity)
	assert.Equal(t, domain.BulkScrap, items[3].Condition)
}

func TestReconcile_FileFailureContributesNothing(t *testing.T) {
	t.Parallel()

	form := FormRows(FormFields{Types: []string{"Laptop"}})
	bad := Spreadsheet("broken.xlsx", []byte("nope"))
	unknown := FileSource("notes.txt", []byte("Laptop"))

	batch := newTestReconciler().Reconcile(context.Background(), form, bad, unknown)

	assert.Equal(t, 1, batch.Accepted())
	require.Len(t, batch.FileFailures, 2)
	assert.Equal(t, "broken.xlsx", batch.FileFailures[0].Source)
	assert.Equal(t, FormatXLSX, batch.FileFailures[0].Format)
	assert.Equal(t, FormatUnknown, batch.FileFailures[1].Format)
	assert.Equal(t, 1, batch.Totals.Quantity)
}

func TestReconcile_NoSources(t *testing.T) {
	t.Parallel()

	batch := newTestReconciler().Reconcile(context.Background())
	assert.NotNil(t, batch.Rows)
	assert.Empty(t, batch.Rows)
	assert.Equal(t, Totals{}, batch.Totals)
}

func TestReconcile_Sanitizes(t *testing.T) {
	t.Parallel()

	form := FormRows(FormFields{
		Types:  []string{"  Laptop\x00 "},
		Models: []string{"Think\x07Pad\u200b " + strings.Repeat("z", 120)},
		Notes:  []string{"line one\nline two\t"},
	})

	batch := newTestReconciler().Reconcile(context.Background(), form)
	items := batch.Items()
	require.Len(t, items, 1)

	assert.Equal(t, domain.CategoryLaptop, items[0].Category)
	assert.Equal(t, 144, items[0].EstimatedPricePerUnit)
	assert.Len(t, []rune(items[0].BrandModel), MaxBrandModelLen)
	assert.True(t, strings.HasPrefix(items[0].BrandModel, "ThinkPad "))
	assert.Equal(t, "line oneline two", items[0].Notes)
}

func TestParseQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
	}{
		{in: "3", want: 3},
		{in: " 12 ", want: 12},
		{in: "", want: 1},
		{in: "abc", want: 1},
		{in: "0", want: 1},
		{in: "-2", want: 1},
		{in: "2.9", want: 2},
		{in: "0.5", want: 1},
		{in: "NaN", want: 1},
		{in: "1e3", want: 1000},
		{in: "1e12", want: 2147483647},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseQuantity(tt.in), tt.in)
	}
}

func TestParseCondition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want domain.BulkCondition
	}{
		{in: "", want: domain.BulkWorking},
		{in: "WORKING", want: domain.BulkWorking},
		{in: "works fine", want: domain.BulkWorking},
		{in: "Damaged", want: domain.BulkDamaged},
		{in: "water damage", want: domain.BulkDamaged},
		{in: "SCRAP", want: domain.BulkScrap},
		{in: "dead", want: domain.BulkScrap},
		{in: "not working, damaged", want: domain.BulkWorking},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCondition(tt.in), tt.in)
	}
}
