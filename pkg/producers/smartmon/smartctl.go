// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"github.com/rs/zerolog/log"
)

// ReportSource produces the smartctl report of a disk.
type ReportSource interface {
	Report(ctx context.Context, target DiskTarget) (string, error)
}

// Smartctl runs smartctl -a, optionally behind a privilege prefix such as sudo.
type Smartctl struct {
	Path    string
	Sudo    string
	DevRoot string
	Timeout time.Duration // 0 waits forever
}

func NewSmartctl(cfg SmartmonConfig) *Smartctl {
	return &Smartctl{
		Path:    cfg.SmartctlPath,
		Sudo:    cfg.Sudo,
		DevRoot: cfg.DevRoot,
		Timeout: time.Duration(cfg.Timeout) * time.Second,
	}
}

func checkSmartctlInstalled(path string) bool {
	_, err := exec.LookPath(path)
	return err == nil
}

// Command returns the argv used to query target.
func (s *Smartctl) Command(target DiskTarget) []string {
	argv := strings.Fields(s.Sudo)
	argv = append(argv, s.Path)
	if target.Driver != "" {
		argv = append(argv, "-d", target.Driver)
	}
	return append(argv, "-a", s.devicePath(target.Device))
}

func (s *Smartctl) devicePath(device string) string {
	if filepath.IsAbs(device) || s.DevRoot == "" {
		return device
	}
	return filepath.Join(s.DevRoot, device)
}

// Report runs smartctl against target and returns its standard output. Any
// non-zero exit status is an error, even when smartctl printed a report.
func (s *Smartctl) Report(ctx context.Context, target DiskTarget) (string, error) {
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	argv := s.Command(target)
	log.Debug().Str("disk", target.Name).Str("command", shellescape.QuoteCommand(argv)).Msg("running smartctl")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	// children of sudo may keep stdout open after the kill
	cmd.WaitDelay = time.Second

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("error running smartctl on %s: %w", target.Device, err)
	}
	return string(out), nil
}
