// Package validate parses the PromQL in generated artifacts and checks that
// every selected metric is one ecycle exports.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/ecycle/tools/dashgen/rules"
)

// Result collects problems found during validation. Errors fail generation;
// warnings are informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there were no errors.
func (r *Result) Ok() bool {
	return len(r.Errors) == 0
}

var histogramSuffixes = []string{"_bucket", "_sum", "_count"}

func baseName(metric string, known map[string]bool) string {
	if known[metric] {
		return metric
	}
	for _, s := range histogramSuffixes {
		if b, ok := strings.CutSuffix(metric, s); ok && known[b] {
			return b
		}
	}
	return metric
}

// Expr validates one PromQL expression, labelled where for error messages.
func (r *Result) Expr(where, expr string, known map[string]bool) {
	if strings.Contains(expr, "${") {
		r.Warnings = append(r.Warnings, fmt.Sprintf("%s: template variable left unparsed", where))
		return
	}

	e, err := parser.ParseExpr(expr)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", where, err))
		return
	}

	parser.Inspect(e, func(node parser.Node, _ []parser.Node) error {
		vs, ok := node.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[baseName(vs.Name, known)] {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})
}

// Dashboard validates every "expr" in an encoded Grafana dashboard.
func Dashboard(data []byte, known map[string]bool) Result {
	var res Result

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	var walk func(path string, v any)
	walk = func(path string, v any) {
		switch t := v.(type) {
		case map[string]any:
			if expr, ok := t["expr"].(string); ok {
				title := path
				if s, ok := t["refId"].(string); ok {
					title += "/" + s
				}
				res.Expr(title, expr, known)
			}
			next := path
			if s, ok := t["title"].(string); ok {
				next = s
			}
			for _, child := range t {
				walk(next, child)
			}
		case []any:
			for _, child := range t {
				walk(path, child)
			}
		}
	}
	walk("dashboard", doc)

	return res
}

// Rules validates every expression in a PrometheusRule.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("%s: rule without record or alert name", g.Name))
				continue
			}
			res.Expr(g.Name+"/"+name, rule.Expr, known)
		}
	}
	return res
}
