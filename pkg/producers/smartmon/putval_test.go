// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleString(t *testing.T) {
	s := Sample{
		Hostname: "host1",
		Group:    "errors",
		Disk:     "primary",
		Metric:   "gauge-glist",
		Interval: 60,
		Value:    "7",
	}

	assert.Equal(t, "host1/smartmon-errors-primary/gauge-glist", s.Identifier())
	assert.Equal(t, `PUTVAL "host1/smartmon-errors-primary/gauge-glist" interval=60 N:7`, s.String())
}

func TestSampleStringIsNotEscaped(t *testing.T) {
	s := Sample{Hostname: `we"ird/host`, Group: "temp", Disk: "a b", Metric: "temperature-current_c", Interval: 10, Value: "3.5"}
	assert.Equal(t, `PUTVAL "we"ird/host/smartmon-temp-a b/temperature-current_c" interval=10 N:3.5`, s.String())
}

func TestPutvalWriterBuffersUntilFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewPutvalWriter(&buf)

	require.NoError(t, w.Write(Sample{Hostname: "h", Group: "read", Disk: "d", Metric: "gauge-read_ecc_fast", Interval: 60, Value: "1"}))
	require.NoError(t, w.Write(Sample{Hostname: "h", Group: "read", Disk: "d", Metric: "gauge-read_ecc_delayed", Interval: 60, Value: "2"}))
	assert.Zero(t, buf.Len())

	require.NoError(t, w.Flush())
	assert.Equal(t,
		"PUTVAL \"h/smartmon-read-d/gauge-read_ecc_fast\" interval=60 N:1\n"+
			"PUTVAL \"h/smartmon-read-d/gauge-read_ecc_delayed\" interval=60 N:2\n",
		buf.String())
}
