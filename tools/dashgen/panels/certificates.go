package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// CertificatesIssued shows bulk certificates issued per hour alongside
// failed attempts.
func CertificatesIssued() *timeseries.PanelBuilder {
	return lineChart("Certificates", "Bulk disposal certificates issued and failed per hour", "short").
		WithTarget(PromQuery(`sum(increase(`+sel("ecycle_certificates_issued_total")+`[1h]))`, "issued", "A")).
		WithTarget(PromQuery(`sum(increase(`+sel("ecycle_certificate_failures_total")+`[1h]))`, "failed", "B"))
}

// NotificationFailures shows webhook failures in the last hour.
func NotificationFailures() *stat.PanelBuilder {
	return counterStat("Notification Failures (1h)", "Discord webhook sends that failed in the last hour",
		`sum(increase(`+sel("ecycle_notification_failures_total")+`[1h]))`, "short").
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemeThresholds())
}

// NotificationLatency shows p95 webhook latency.
func NotificationLatency() *timeseries.PanelBuilder {
	return lineChart("Notification Latency", "95th percentile Discord webhook duration", "s").
		WithTarget(PromQuery(quantile(0.95, "ecycle_notification_duration_seconds", "le"), "p95", "A"))
}
