package main

import "errors"

// KnownMetrics is the set of metric names exported by ecycle plus the
// recording rules referenced in dashboards and alerts. Histogram series are
// listed by base name.
var KnownMetrics = map[string]bool{
	"ecycle_http_request_duration_seconds": true,
	"ecycle_http_requests_total":           true,
	"ecycle_healthz_up":                    true,
	"ecycle_readyz_up":                     true,

	"ecycle_intake_rows_total":            true,
	"ecycle_intake_file_failures_total":   true,
	"ecycle_bulk_pickups_submitted_total": true,
	"ecycle_pickups_scheduled_total":      true,
	"ecycle_eco_points_awarded_total":     true,
	"ecycle_carbon_saved_kg_total":        true,

	"ecycle_classifications_total":           true,
	"ecycle_classification_fallbacks_total":  true,
	"ecycle_classification_duration_seconds": true,

	"ecycle_certificates_issued_total":         true,
	"ecycle_certificate_failures_total":        true,
	"ecycle_scheduler_next_backfill_timestamp": true,
	"ecycle_redemptions_total":                 true,

	"ecycle_notification_failures_total":   true,
	"ecycle_notification_duration_seconds": true,

	"ecycle:http_requests:rate5m":            true,
	"ecycle:http_errors:rate5m":              true,
	"ecycle:intake_rows:rate5m":              true,
	"ecycle:intake_skipped_rows:rate5m":      true,
	"ecycle:classification_fallbacks:rate5m": true,
	"ecycle:classifications:rate5m":          true,

	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig generates every artifact into ../../deploy relative to
// tools/dashgen/.
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
