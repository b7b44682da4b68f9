// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobaltcore-dev/smartmon/pkg/producers/smartmon"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "smartmon.yaml", `
hostname: storage01
interval: 30
sudo: ""
timeout: 120
disks:
  - sda:primary
  - sdb:nvme,nvme
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "storage01", cfg.Hostname)
	assert.Equal(t, 30, cfg.Interval)
	require.NotNil(t, cfg.Sudo)
	assert.Equal(t, "", *cfg.Sudo)
	assert.Equal(t, 120, cfg.Timeout)
	assert.Equal(t, []string{"sda:primary", "sdb:nvme,nvme"}, cfg.Disks)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	path := writeConfig(t, "smartmon.json", `{"interval": 15, "smartctl_path": "/opt/smartctl"}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	base := smartmon.SmartmonConfig{
		Hostname:     "from-flag",
		Interval:     smartmon.DefaultInterval,
		SmartctlPath: smartmon.DefaultSmartctlPath,
		Sudo:         smartmon.DefaultSudo,
		DevRoot:      smartmon.DefaultDevRoot,
		Disks:        []string{"sda"},
	}
	merged := cfg.Apply(base)

	assert.Equal(t, "from-flag", merged.Hostname)
	assert.Equal(t, 15, merged.Interval)
	assert.Equal(t, "/opt/smartctl", merged.SmartctlPath)
	assert.Equal(t, smartmon.DefaultSudo, merged.Sudo)
	assert.Equal(t, []string{"sda"}, merged.Disks)
}
