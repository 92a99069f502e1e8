package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
)

func upStat(title, description, metric string) *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title(title).
		Description(description).
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(sel(metric), "", "A")).
		Thresholds(ThresholdsRedGreen(1)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}

// HealthzStat shows the liveness probe (1 = ok).
func HealthzStat() *stat.PanelBuilder {
	return upStat("Healthz", "Health check status (1 = ok, 0 = failing)", "ecycle_healthz_up")
}

// ReadyzStat shows the readiness probe (1 = database reachable).
func ReadyzStat() *stat.PanelBuilder {
	return upStat("Readyz", "Readiness check status (1 = ready, 0 = database unreachable)", "ecycle_readyz_up")
}

// UptimeStat shows time since process start.
func UptimeStat() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Uptime").
		Description("Time since process start").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`time() - `+sel("process_start_time_seconds"), "", "A")).
		Unit("s").
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}

// NextBackfill counts down to the next certificate backfill run. Negative
// values mean the scheduler has stalled.
func NextBackfill() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Next Certificate Backfill").
		Description("Seconds until the scheduler next issues pending bulk certificates").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(sel("ecycle_scheduler_next_backfill_timestamp")+` - time()`, "", "A")).
		Unit("s").
		Thresholds(ThresholdsRedGreen(0)).
		ColorScheme(ColorSchemeThresholds()).
		GraphMode(common.BigValueGraphModeNone)
}
