// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"regexp"
	"strings"
)

// Rule pulls a single value out of a smartctl report. The first capture group
// of Pattern is the value.
type Rule struct {
	Category string // collectd type, e.g. gauge or temperature
	Name     string
	Group    string
	Pattern  *regexp.Regexp
}

// MetricName is the collectd type and type instance of the rule.
func (r Rule) MetricName() string {
	return r.Category + "-" + r.Name
}

// Find returns the first capture group of the rule's pattern in report.
func (r Rule) Find(report string) (string, bool) {
	m := r.Pattern.FindStringSubmatch(report)
	// collectd rejects a PUTVAL without a value, so an empty capture counts as absent
	if len(m) < 2 || m[1] == "" {
		return "", false
	}
	return m[1], true
}

func newRule(category, name, group, pattern string) Rule {
	return Rule{
		Category: category,
		Name:     name,
		Group:    group,
		Pattern:  regexp.MustCompile(`(?im)` + pattern),
	}
}

// errorCounterColumns are the columns of the smartctl "Error counter log" table,
// in the order smartctl prints them.
var errorCounterColumns = []string{
	"ecc_fast",
	"ecc_delayed",
	"rewrite_reread",
	"error_total",
	"correction_algorithm",
	"gigs_processed",
	"error_uncorrected",
}

// gigabytes processed is printed with a decimal fraction
const errorCounterDecimalColumn = 5

// errorCounterPattern matches a row of the error counter log and captures the
// given column. Columns are separated by any amount of whitespace.
func errorCounterPattern(row string, column int) string {
	fields := make([]string, len(errorCounterColumns))
	for i := range errorCounterColumns {
		field := `[0-9]*`
		if i == errorCounterDecimalColumn {
			field = `[0-9\.]*`
		}
		if i == column {
			field = "(" + field + ")"
		}
		fields[i] = field
	}
	return row + `:\s*` + strings.Join(fields, `\s*`)
}

func errorCounterRules(row string) []Rule {
	rules := make([]Rule, len(errorCounterColumns))
	for i, column := range errorCounterColumns {
		rules[i] = newRule("gauge", row+"_"+column, row, errorCounterPattern(row, i))
	}
	return rules
}

var defaultRules = buildDefaultRules()

func buildDefaultRules() []Rule {
	rules := []Rule{
		newRule("gauge", "glist", "errors", `^Elements in grown defect list:\s*([0-9]*)`),
		newRule("temperature", "current_c", "temp", `^Current Drive Temperature:\s*([0-9]*)`),
		newRule("temperature", "trip_c", "temp", `^Drive Trip Temperature:\s*([0-9]*)`),
		newRule("gauge", "cycle_rated_count", "cycle", `^Specified cycle count over device lifetime:\s*([0-9]*)`),
		newRule("gauge", "cycle_current_count", "cycle", `^Accumulated start-stop cycles:\s*([0-9]*)`),
		newRule("gauge", "unload_load_rated_count", "load", `^Specified load-unload count over device lifetime:\s*([0-9]*)`),
		newRule("gauge", "unload_load_current_count", "load", `^Accumulated load-unload cycles:\s*([0-9]*)`),
		newRule("gauge", "hours_powered_up", "gen", `^\s*number of hours powered up =\s*([0-9\.]*)`),
		newRule("gauge", "next_smarttest", "gen", `^\s*number of minutes until next internal SMART test =\s*([0-9\.]*)`),
	}

	for _, row := range []string{"read", "write", "verify"} {
		rules = append(rules, errorCounterRules(row)...)
	}
	return rules
}

// DefaultRules returns the extraction rules in emission order.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}
