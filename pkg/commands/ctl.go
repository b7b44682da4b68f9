// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and prysm contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var v string

var rootCmd = &cobra.Command{
	Use:   "smartmon [flags] <disk>[:<name>[,<driver>]] ...",
	Short: "collectd exec plugin for smartctl disk health metrics",
	Long: `Polls smartctl -a for every disk and writes the values found in the
report as collectd PUTVAL lines to stdout. Logs are written to stderr.

Disks are given as <disk>, <disk>:<name>, <disk>:<name>,<driver> or
<disk>:<name>:<driver>. A single colon no longer sets the driver: the old
form sdc:megaraid,3 now means name "megaraid" with driver "3", and sda:sat
has no driver at all. Write sdc:bay3,megaraid,3 or sda:sda:sat instead.

Values from the config file override flag defaults. Flags given on the
command line override the config file, and the environment overrides both.`,
	Example: `  smartmon sda:primary sdb:nvme,nvme
  smartmon --interval 300 sdc:bay3:megaraid,3`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setUpLogs(v); err != nil {
			return err
		}
		return nil
	},
	Run: runSmartmon,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&v, "verbosity", "v", zerolog.WarnLevel.String(), "Log level (debug, info, warn, error, fatal, panic")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Whoops. There was an error while executing your CLI '%s'\n", err)
		os.Exit(1)
	}
}

// setUpLogs sets the log output and the log level. Stdout carries the PUTVAL
// stream, so logs go to stderr where collectd picks them up.
func setUpLogs(level string) error {
	zerolog.SetGlobalLevel(zerolog.WarnLevel) // Default level
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
