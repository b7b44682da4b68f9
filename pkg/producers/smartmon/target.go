// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"errors"
	"strings"
)

// ErrNoTargets is returned when no disk was given on the command line or in the configuration.
var ErrNoTargets = errors.New("no disks specified")

// DiskTarget is one disk to poll. Driver is passed to smartctl as -d when set and
// Name is the label used in the emitted metric identifiers.
type DiskTarget struct {
	Device string
	Name   string
	Driver string
}

// ParseTarget converts a token of the form device[:name[,driver]] or
// device:name:driver into a DiskTarget. Tokens with more than two colons
// fall back to the bare device form.
func ParseTarget(token string) DiskTarget {
	parts := strings.Split(token, ":")

	var target DiskTarget
	switch len(parts) {
	case 2:
		name, driver, _ := strings.Cut(parts[1], ",")
		target = DiskTarget{Device: parts[0], Name: name, Driver: driver}
	case 3:
		target = DiskTarget{Device: parts[0], Name: parts[1], Driver: parts[2]}
	default:
		target = DiskTarget{Device: parts[0]}
	}

	if target.Name == "" {
		target.Name = target.Device
	}
	return target
}

// ParseTargets parses every non-blank token in order.
func ParseTargets(tokens []string) ([]DiskTarget, error) {
	var targets []DiskTarget
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		targets = append(targets, ParseTarget(token))
	}

	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	return targets, nil
}

func targetNames(targets []DiskTarget) []string {
	names := make([]string, len(targets))
	for i, target := range targets {
		names[i] = target.Name
	}
	return names
}
