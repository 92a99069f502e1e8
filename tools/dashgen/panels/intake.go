package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// IntakeRows shows accepted and skipped inventory rows per second, by
// source format.
func IntakeRows() *timeseries.PanelBuilder {
	return lineChart("Intake Rows", "Bulk inventory rows reconciled per second", "rowsps").
		WithTarget(PromQuery(`ecycle:intake_rows:rate5m`, "{{format}}", "A")).
		WithTarget(PromQuery(`ecycle:intake_skipped_rows:rate5m`, "{{format}} skipped", "B")).
		Legend(TableLegend("mean", "max"))
}

// IntakeFileFailures shows uploads that contributed no rows.
func IntakeFileFailures() *timeseries.PanelBuilder {
	return lineChart("Unreadable Files", "Uploaded inventory files that could not be parsed", "short").
		WithTarget(PromQuery(`sum by (format) (increase(`+sel("ecycle_intake_file_failures_total")+`[1h]))`, "{{format}}", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 10)).
		ColorScheme(ColorSchemeThresholds())
}

func counterStat(title, description, expr, unit string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(expr, "", "A")).
		Unit(unit).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		GraphMode(common.BigValueGraphModeArea)
}

// BulkSubmissions shows bulk pickups submitted in the last day.
func BulkSubmissions() *stat.PanelBuilder {
	return counterStat("Bulk Pickups (24h)", "Bulk pickups submitted in the last 24 hours",
		`sum(increase(`+sel("ecycle_bulk_pickups_submitted_total")+`[24h]))`, "short")
}

// PickupsScheduled shows individual pickups scheduled in the last day.
func PickupsScheduled() *stat.PanelBuilder {
	return counterStat("Pickups (24h)", "Individual pickups scheduled in the last 24 hours",
		`sum(increase(`+sel("ecycle_pickups_scheduled_total")+`[24h]))`, "short")
}
