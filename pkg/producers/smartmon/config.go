// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

const (
	DefaultSmartctlPath = "/usr/sbin/smartctl"
	DefaultSudo         = "/usr/bin/sudo"
	DefaultDevRoot      = "/dev"
	DefaultInterval     = 60
)

type SmartmonConfig struct {
	Disks        []string     // raw device[:name[,driver]] tokens
	Targets      []DiskTarget `validate:"min=1"`
	Hostname     string       `validate:"required"`
	Interval     int          `validate:"gte=1"` // in seconds
	SmartctlPath string       `validate:"required"`
	Sudo         string       // privilege prefix, empty runs smartctl directly
	DevRoot      string
	Timeout      int `validate:"gte=0"` // in seconds, 0 waits forever
	MetricsPort  int `validate:"gte=0,lte=65535"`
}
