package panels

import (
	"fmt"

	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

func lineChart(title, description, unit string) *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		Unit(unit).
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

func quantile(q float64, metric, by string) string {
	return fmt.Sprintf(`histogram_quantile(%.2f, sum(rate(%s[5m])) by (%s))`, q, sel(metric+"_bucket"), by)
}

// RequestRate shows the HTTP request rate.
func RequestRate() *timeseries.PanelBuilder {
	return lineChart("Request Rate", "HTTP requests per second", "reqps").
		WithTarget(PromQuery(`ecycle:http_requests:rate5m`, "req/s", "A")).
		Legend(TableLegend("mean", "max"))
}

// LatencyPercentiles shows p50, p95 and p99 HTTP request latency by route.
func LatencyPercentiles() *timeseries.PanelBuilder {
	const m = "ecycle_http_request_duration_seconds"
	return lineChart("Latency Percentiles", "HTTP request duration percentiles", "s").
		WithTarget(PromQuery(quantile(0.50, m, "le"), "p50", "A")).
		WithTarget(PromQuery(quantile(0.95, m, "le"), "p95", "B")).
		WithTarget(PromQuery(quantile(0.99, m, "le"), "p99", "C")).
		Legend(TableLegend("mean", "max"))
}

// SlowRoutes shows p95 latency per route template.
func SlowRoutes() *timeseries.PanelBuilder {
	return lineChart("p95 by Route", "95th percentile latency per route", "s").
		WithTarget(PromQuery(quantile(0.95, "ecycle_http_request_duration_seconds", "le, path"), "{{path}}", "A"))
}

// ErrorRate shows 5xx responses as a percentage of all requests.
func ErrorRate() *timeseries.PanelBuilder {
	return lineChart("Error Rate %", "HTTP 5xx error rate as percentage of total requests", "percent").
		WithTarget(PromQuery(`ecycle:http_errors:rate5m / ecycle:http_requests:rate5m * 100`, "error %", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}
