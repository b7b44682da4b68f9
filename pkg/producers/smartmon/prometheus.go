// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	pollsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartmon_polls_total",
			Help: "Number of smartctl polls per disk and result",
		},
		[]string{"disk", "result"},
	)

	samplesEmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartmon_samples_emitted_total",
			Help: "Number of PUTVAL lines written per disk",
		},
		[]string{"disk"},
	)

	smartctlDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartmon_smartctl_duration_seconds",
			Help:    "Time spent waiting for smartctl",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"disk"},
	)
)

func init() {
	prometheus.MustRegister(pollsTotal)
	prometheus.MustRegister(samplesEmittedTotal)
	prometheus.MustRegister(smartctlDuration)
}

// StartPrometheusServer serves the collector's own metrics on /metrics. The
// disk values themselves only go to collectd.
func StartPrometheusServer(port int) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.Info().Msgf("starting prometheus metrics server on :%d", port)
		err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
		if err != nil {
			log.Fatal().Err(err).Msg("error starting prometheus metrics server")
		}
	}()
}
