// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller polls each target in turn and writes the extracted values to collectd.
type Poller struct {
	targets  []DiskTarget
	rules    []Rule
	source   ReportSource
	out      *PutvalWriter
	hostname string
	interval int
}

func NewPoller(cfg SmartmonConfig, source ReportSource, w io.Writer) *Poller {
	return &Poller{
		targets:  cfg.Targets,
		rules:    DefaultRules(),
		source:   source,
		out:      NewPutvalWriter(w),
		hostname: cfg.Hostname,
		interval: cfg.Interval,
	}
}

func (p *Poller) sample(target DiskTarget, match Match) Sample {
	return Sample{
		Hostname: p.hostname,
		Group:    match.Rule.Group,
		Disk:     target.Name,
		Metric:   match.Rule.MetricName(),
		Interval: p.interval,
		Value:    match.Value,
	}
}

// PollDisk queries one disk and writes one line per matching rule. The lines
// are flushed once all rules have been applied.
func (p *Poller) PollDisk(ctx context.Context, target DiskTarget) (int, error) {
	start := time.Now()
	report, err := p.source.Report(ctx, target)
	smartctlDuration.WithLabelValues(target.Name).Observe(time.Since(start).Seconds())
	if err != nil {
		pollsTotal.WithLabelValues(target.Name, "failed").Inc()
		return 0, err
	}

	emitted := 0
	for _, match := range Extract(report, p.rules) {
		if err := p.out.Write(p.sample(target, match)); err != nil {
			pollsTotal.WithLabelValues(target.Name, "failed").Inc()
			return emitted, err
		}
		emitted++
	}
	if err := p.out.Flush(); err != nil {
		pollsTotal.WithLabelValues(target.Name, "failed").Inc()
		return emitted, err
	}

	pollsTotal.WithLabelValues(target.Name, "ok").Inc()
	samplesEmittedTotal.WithLabelValues(target.Name).Add(float64(emitted))
	return emitted, nil
}

// RunCycle polls every target once. A failing disk is skipped.
func (p *Poller) RunCycle(ctx context.Context) {
	for _, target := range p.targets {
		if ctx.Err() != nil {
			return
		}

		emitted, err := p.PollDisk(ctx, target)
		if err != nil {
			log.Warn().Err(err).Str("disk", target.Name).Str("device", target.Device).Msg("skipping disk for this cycle")
			continue
		}
		log.Debug().Str("disk", target.Name).Int("samples", emitted).Msg("disk polled")
	}
}

// Run polls all targets, sleeps for the interval and starts over until ctx
// is cancelled. A slow cycle delays the next one.
func (p *Poller) Run(ctx context.Context) error {
	interval := time.Duration(p.interval) * time.Second
	for {
		p.RunCycle(ctx)

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// StartMonitoring polls the configured disks with smartctl and writes PUTVAL
// lines to stdout until ctx is cancelled.
func StartMonitoring(ctx context.Context, cfg SmartmonConfig) error {
	if len(cfg.Targets) == 0 {
		return ErrNoTargets
	}
	if cfg.Interval < 1 {
		return fmt.Errorf("invalid interval %d", cfg.Interval)
	}

	if !checkSmartctlInstalled(cfg.SmartctlPath) {
		log.Warn().Str("smartctl", cfg.SmartctlPath).Msg("smartctl not found, please install smartmontools package")
	}

	log.Info().Strs("devices", targetNames(cfg.Targets)).Msg("devices for monitoring")

	if cfg.MetricsPort > 0 {
		StartPrometheusServer(cfg.MetricsPort)
	}

	poller := NewPoller(cfg, NewSmartctl(cfg), os.Stdout)
	return poller.Run(ctx)
}
