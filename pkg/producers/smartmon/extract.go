// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"github.com/rs/zerolog/log"
)

// Match is the value one rule captured from a report.
type Match struct {
	Rule  Rule
	Value string
}

// Extract applies every rule to the full report and returns the matches in
// rule order. Rules that do not match are skipped.
func Extract(report string, rules []Rule) []Match {
	var matches []Match
	for _, rule := range rules {
		value, ok := rule.Find(report)
		if !ok {
			log.Debug().Str("metric", rule.MetricName()).Str("group", rule.Group).Msg("metric not present in report")
			continue
		}
		matches = append(matches, Match{Rule: rule, Value: value})
	}
	return matches
}
