// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/ecycle/tools/dashgen/panels"
)

// BuildOverview constructs the ecycle overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("ecycle Overview").
		Uid("ecycle-overview").
		Tags([]string{"ecycle"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.UptimeStat()).
		WithPanel(panels.NextBackfill()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()).
		WithPanel(panels.SlowRoutes()))

	b.WithRow(dashboard.NewRowBuilder("Pickups & Impact").
		WithPanel(panels.BulkSubmissions()).
		WithPanel(panels.PickupsScheduled()).
		WithPanel(panels.EcoPointsAwarded()).
		WithPanel(panels.CarbonSaved()).
		WithPanel(panels.Redemptions()))

	b.WithRow(dashboard.NewRowBuilder("Bulk Intake").
		WithPanel(panels.IntakeRows()).
		WithPanel(panels.IntakeFileFailures()))

	b.WithRow(dashboard.NewRowBuilder("Classification").
		WithPanel(panels.ClassificationsBySource()).
		WithPanel(panels.FallbackReasons()).
		WithPanel(panels.ClassificationLatency()))

	b.WithRow(dashboard.NewRowBuilder("Certificates & Notifications").
		WithPanel(panels.CertificatesIssued()).
		WithPanel(panels.NotificationFailures()).
		WithPanel(panels.NotificationLatency()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
