// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"bufio"
	"fmt"
	"io"
)

// Sample is one value ready to be handed to collectd.
type Sample struct {
	Hostname string
	Group    string
	Disk     string
	Metric   string
	Interval int // in seconds
	Value    string
}

// Identifier is the collectd identifier host/plugin-instance/type-instance.
func (s Sample) Identifier() string {
	return fmt.Sprintf("%s/smartmon-%s-%s/%s", s.Hostname, s.Group, s.Disk, s.Metric)
}

// String renders the sample as a PUTVAL command of the collectd plain text
// protocol. N stands for the current time.
func (s Sample) String() string {
	return fmt.Sprintf("PUTVAL \"%s\" interval=%d N:%s", s.Identifier(), s.Interval, s.Value)
}

// PutvalWriter buffers PUTVAL lines until Flush is called.
type PutvalWriter struct {
	w *bufio.Writer
}

func NewPutvalWriter(w io.Writer) *PutvalWriter {
	return &PutvalWriter{w: bufio.NewWriter(w)}
}

func (p *PutvalWriter) Write(s Sample) error {
	if _, err := p.w.WriteString(s.String() + "\n"); err != nil {
		return fmt.Errorf("error writing putval line: %w", err)
	}
	return nil
}

func (p *PutvalWriter) Flush() error {
	if err := p.w.Flush(); err != nil {
		return fmt.Errorf("error flushing putval lines: %w", err)
	}
	return nil
}
