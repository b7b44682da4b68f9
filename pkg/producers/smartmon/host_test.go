// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"errors"
	"testing"

	"github.com/shirou/gopsutil/host"
	"github.com/stretchr/testify/assert"
)

func stubHostLookups(t *testing.T, addr func(string) ([]string, error), info func() (*host.InfoStat, error)) {
	t.Helper()
	origAddr, origInfo := lookupAddr, hostInfo
	lookupAddr, hostInfo = addr, info
	t.Cleanup(func() {
		lookupAddr, hostInfo = origAddr, origInfo
	})
}

func TestResolveHostnameFromLoopback(t *testing.T) {
	stubHostLookups(t,
		func(addr string) ([]string, error) {
			assert.Equal(t, "127.0.0.1", addr)
			return []string{"storage01.example.com."}, nil
		},
		func() (*host.InfoStat, error) {
			t.Fatal("host info must not be used")
			return nil, nil
		})

	assert.Equal(t, "storage01.example.com", ResolveHostname())
}

func TestResolveHostnameFallsBackToHostInfo(t *testing.T) {
	stubHostLookups(t,
		func(string) ([]string, error) { return nil, errors.New("no such host") },
		func() (*host.InfoStat, error) { return &host.InfoStat{Hostname: "storage02"}, nil })

	assert.Equal(t, "storage02", ResolveHostname())
}

func TestResolveHostnameLocalhost(t *testing.T) {
	stubHostLookups(t,
		func(string) ([]string, error) { return nil, nil },
		func() (*host.InfoStat, error) { return nil, errors.New("no host info") })

	assert.Equal(t, "localhost", ResolveHostname())
}
