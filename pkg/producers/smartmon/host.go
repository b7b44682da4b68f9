// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package smartmon

import (
	"net"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/host"
)

var (
	lookupAddr = net.LookupAddr
	hostInfo   = host.Info
)

// ResolveHostname returns the name collectd would use for this host when
// COLLECTD_HOSTNAME is not set: the reverse lookup of the loopback address,
// then the kernel hostname, then localhost.
func ResolveHostname() string {
	names, err := lookupAddr("127.0.0.1")
	if err == nil && len(names) > 0 && names[0] != "" {
		return strings.TrimSuffix(names[0], ".")
	}
	if err != nil {
		log.Debug().Err(err).Msg("error resolving loopback address")
	}

	info, err := hostInfo()
	if err != nil {
		log.Warn().Err(err).Msg("error reading host info")
		return "localhost"
	}
	if info.Hostname == "" {
		return "localhost"
	}
	return info.Hostname
}
