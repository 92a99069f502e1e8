package rules

// Recording rule names shared with the dashboard and alerts.
const (
	HTTPRequestsRate           = "ecycle:http_requests:rate5m"
	HTTPErrorsRate             = "ecycle:http_errors:rate5m"
	IntakeRowsRate             = "ecycle:intake_rows:rate5m"
	IntakeSkippedRowsRate      = "ecycle:intake_skipped_rows:rate5m"
	ClassificationsRate        = "ecycle:classifications:rate5m"
	ClassificationFallbackRate = "ecycle:classification_fallbacks:rate5m"
)

// RecordingRules returns the pre-computed rates used by the dashboard and
// alert rules.
func RecordingRules() PrometheusRule {
	return newRule("ecycle-recording-rules", RuleGroup{
		Name: "ecycle-recording",
		Rules: []Rule{
			{Record: HTTPRequestsRate, Expr: `sum(rate(ecycle_http_requests_total[5m]))`},
			{Record: HTTPErrorsRate, Expr: `sum(rate(ecycle_http_requests_total{status=~"5.."}[5m]))`},
			{Record: IntakeRowsRate, Expr: `sum by (format) (rate(ecycle_intake_rows_total[5m]))`},
			{Record: IntakeSkippedRowsRate, Expr: `sum by (format) (rate(ecycle_intake_rows_total{status="skipped"}[5m]))`},
			{Record: ClassificationsRate, Expr: `sum by (source) (rate(ecycle_classifications_total[5m]))`},
			{Record: ClassificationFallbackRate, Expr: `sum by (reason) (rate(ecycle_classification_fallbacks_total[5m]))`},
		},
	})
}
