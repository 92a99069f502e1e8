package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/bargauge"
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ClassificationsBySource shows classifications per second by the backend
// that answered.
func ClassificationsBySource() *timeseries.PanelBuilder {
	return lineChart("Classifications", "Photo classifications per second by answering backend", "reqps").
		WithTarget(PromQuery(`ecycle:classifications:rate5m`, "{{source}}", "A")).
		Legend(TableLegend("mean", "max"))
}

// FallbackReasons shows why the hosted backend was bypassed.
func FallbackReasons() *bargauge.PanelBuilder {
	return bargauge.NewPanelBuilder().
		Title("Fallback Reasons").
		Description("Why classifications fell back to the offline heuristic, last hour").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum by (reason) (increase(`+sel("ecycle_classification_fallbacks_total")+`[1h]))`,
			"{{reason}}", "A",
		)).
		Orientation(common.VizOrientationHorizontal).
		Min(0).
		Thresholds(ThresholdsGreenYellowRed(5, 50)).
		ColorScheme(ColorSchemeThresholds())
}

// ClassificationLatency shows p50 and p95 classification latency including
// fallback.
func ClassificationLatency() *timeseries.PanelBuilder {
	const m = "ecycle_classification_duration_seconds"
	return lineChart("Classification Latency", "End-to-end classification duration", "s").
		WithTarget(PromQuery(quantile(0.50, m, "le"), "p50", "A")).
		WithTarget(PromQuery(quantile(0.95, m, "le"), "p95", "B"))
}
