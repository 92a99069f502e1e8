package rules

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:  name,
		Expr:   expr,
		For:    forDur,
		Labels: map[string]string{"severity": severity},
		Annotations: map[string]string{
			"summary":     summary,
			"description": description,
		},
	}
}

// AlertRules returns the operational alerts for ecycle.
func AlertRules() PrometheusRule {
	return newRule("ecycle-alerts", RuleGroup{
		Name: "ecycle-alerts",
		Rules: []Rule{
			alert("EcycleDown",
				`absent(up{job="ecycle"})`, "2m", "critical",
				"ecycle is down",
				"The ecycle job has been absent for more than 2 minutes."),
			alert("EcycleReadinessDown",
				`ecycle_readyz_up == 0`, "2m", "critical",
				"ecycle readiness check is failing",
				"The database ping behind /readyz has failed for more than 2 minutes."),
			alert("EcycleHighErrorRate",
				HTTPErrorsRate+` / `+HTTPRequestsRate+` > 0.05`, "5m", "warning",
				"High HTTP error rate on ecycle",
				"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
			alert("EcycleClassifierDegraded",
				`sum(`+ClassificationFallbackRate+`) / sum(`+ClassificationsRate+`) > 0.5`, "15m", "warning",
				"Most photo classifications are using the offline heuristic",
				"The hosted inference service has been failing or timing out for over half of requests."),
			alert("EcycleIntakeSkipsHigh",
				`sum(`+IntakeSkippedRowsRate+`) / sum(`+IntakeRowsRate+`) > 0.25`, "30m", "info",
				"Many bulk intake rows are being skipped",
				"More than a quarter of uploaded inventory rows could not be read."),
			alert("EcycleCertificateFailures",
				`increase(ecycle_certificate_failures_total[30m]) > 0`, "0m", "warning",
				"Bulk certificate issuance is failing",
				"Collected bulk pickups are waiting for certificates that could not be issued."),
			alert("EcycleBackfillStalled",
				`time() - ecycle_scheduler_next_backfill_timestamp > 3600`, "10m", "warning",
				"Certificate backfill has not been rescheduled",
				"The scheduler's next backfill time is more than an hour in the past."),
			alert("EcycleNotificationFailures",
				`increase(ecycle_notification_failures_total[5m]) > 0`, "1m", "warning",
				"Notification delivery failures detected",
				"One or more bulk pickup notifications (Discord webhooks) have failed to send."),
		},
	})
}
