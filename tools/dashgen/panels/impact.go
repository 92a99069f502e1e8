package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// EcoPointsAwarded shows points credited in the last day.
func EcoPointsAwarded() *stat.PanelBuilder {
	return counterStat("Eco Points (24h)", "Eco points credited to users in the last 24 hours",
		`sum(increase(`+sel("ecycle_eco_points_awarded_total")+`[24h]))`, "short")
}

// CarbonSaved shows CO2-equivalent avoided in the last day.
func CarbonSaved() *stat.PanelBuilder {
	return counterStat("CO2 Saved (24h)", "Kilograms of CO2-equivalent avoided in the last 24 hours",
		`sum(increase(`+sel("ecycle_carbon_saved_kg_total")+`[24h]))`, "masskg")
}

// Redemptions shows reward redemption attempts by outcome.
func Redemptions() *timeseries.PanelBuilder {
	return lineChart("Redemptions", "Reward redemption attempts per hour by outcome", "short").
		WithTarget(PromQuery(`sum by (outcome) (increase(`+sel("ecycle_redemptions_total")+`[1h]))`, "{{outcome}}", "A")).
		Legend(TableLegend("sum"))
}
