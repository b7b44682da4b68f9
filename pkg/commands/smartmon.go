// Copyright 2024 Clyso GmbH
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cobaltcore-dev/smartmon/pkg/producers/config"
	"github.com/cobaltcore-dev/smartmon/pkg/producers/smartmon"
)

var (
	smHostname     string
	smInterval     int
	smSmartctlPath string
	smSudo         string
	smDevRoot      string
	smTimeout      int
	smMetricsPort  int
	smConfigFile   string
	smEnvFile      string
)

var validate = validator.New()

func runSmartmon(cmd *cobra.Command, args []string) {
	if smEnvFile != "" {
		if err := godotenv.Load(smEnvFile); err != nil {
			log.Fatal().Err(err).Str("env_file", smEnvFile).Msg("error loading env file")
		}
	}

	cfg := smartmon.SmartmonConfig{
		Disks:        args,
		Hostname:     smHostname,
		Interval:     smInterval,
		SmartctlPath: smSmartctlPath,
		Sudo:         smSudo,
		DevRoot:      smDevRoot,
		Timeout:      smTimeout,
		MetricsPort:  smMetricsPort,
	}

	if smConfigFile != "" {
		fileCfg, err := config.LoadConfig(smConfigFile)
		if err != nil {
			log.Fatal().Err(err).Str("config", smConfigFile).Msg("failed to load config")
		}
		cfg = applyChangedFlags(cmd, fileCfg.Apply(cfg))
		if len(args) > 0 {
			cfg.Disks = args
		}
	}

	cfg = mergeSmartmonConfigWithEnv(cfg)

	targets, err := smartmon.ParseTargets(cfg.Disks)
	if errors.Is(err, smartmon.ErrNoTargets) {
		fmt.Fprintln(os.Stderr, "Error: at least one disk must be given")
		cmd.SetOut(os.Stderr)
		_ = cmd.Usage()
		os.Exit(1)
	}
	cfg.Targets = targets

	if cfg.Hostname == "" {
		cfg.Hostname = smartmon.ResolveHostname()
	}

	event := log.Info()
	event.Str("hostname", cfg.Hostname).
		Int("interval_seconds", cfg.Interval).
		Strs("disks", cfg.Disks).
		Str("smartctl", cfg.SmartctlPath).
		Str("sudo", cfg.Sudo).
		Int("timeout_seconds", cfg.Timeout)
	if cfg.MetricsPort > 0 {
		event.Int("metrics_port", cfg.MetricsPort)
	}
	event.Msg("configuration_loaded")

	validateSmartmonConfig(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := smartmon.StartMonitoring(ctx, cfg); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("error monitoring disks")
	}
}

// applyChangedFlags lets flags given on the command line win over the config file.
func applyChangedFlags(cmd *cobra.Command, cfg smartmon.SmartmonConfig) smartmon.SmartmonConfig {
	flags := cmd.Flags()
	if flags.Changed("hostname") {
		cfg.Hostname = smHostname
	}
	if flags.Changed("interval") {
		cfg.Interval = smInterval
	}
	if flags.Changed("smartctl") {
		cfg.SmartctlPath = smSmartctlPath
	}
	if flags.Changed("sudo") {
		cfg.Sudo = smSudo
	}
	if flags.Changed("dev-root") {
		cfg.DevRoot = smDevRoot
	}
	if flags.Changed("timeout") {
		cfg.Timeout = smTimeout
	}
	if flags.Changed("metrics-port") {
		cfg.MetricsPort = smMetricsPort
	}
	return cfg
}

func mergeSmartmonConfigWithEnv(cfg smartmon.SmartmonConfig) smartmon.SmartmonConfig {
	cfg.Hostname = getEnv("COLLECTD_HOSTNAME", cfg.Hostname)
	// collectd exports the interval as a float, e.g. "10.000"
	if interval := getEnvFloat("COLLECTD_INTERVAL", float64(cfg.Interval)); interval >= 1 && !math.IsInf(interval, 0) {
		cfg.Interval = int(math.Ceil(interval))
	}
	cfg.SmartctlPath = getEnv("SMARTCTL_PATH", cfg.SmartctlPath)
	cfg.Sudo = getEnv("SMARTMON_SUDO", cfg.Sudo)
	cfg.DevRoot = getEnv("SMARTMON_DEV_ROOT", cfg.DevRoot)
	cfg.Timeout = getEnvInt("SMARTMON_TIMEOUT", cfg.Timeout)
	cfg.MetricsPort = getEnvInt("SMARTMON_METRICS_PORT", cfg.MetricsPort)
	if len(cfg.Disks) == 0 {
		if disksEnv := getEnv("DISKS", ""); disksEnv != "" {
			cfg.Disks = strings.Fields(disksEnv)
		}
	}

	return cfg
}

func init() {
	rootCmd.Flags().StringVar(&smHostname, "hostname", "", "Hostname used in the metric identifiers (default: reverse lookup of 127.0.0.1)")
	rootCmd.Flags().IntVar(&smInterval, "interval", smartmon.DefaultInterval, "Interval in seconds between polls")
	rootCmd.Flags().StringVar(&smSmartctlPath, "smartctl", smartmon.DefaultSmartctlPath, "Path to the smartctl binary")
	rootCmd.Flags().StringVar(&smSudo, "sudo", smartmon.DefaultSudo, "Command prefix granting access to the disks, empty to run smartctl directly")
	rootCmd.Flags().StringVar(&smDevRoot, "dev-root", smartmon.DefaultDevRoot, "Directory relative device names are resolved against")
	rootCmd.Flags().IntVar(&smTimeout, "timeout", 0, "Seconds to wait for smartctl before giving up on a disk, 0 waits forever")
	rootCmd.Flags().IntVar(&smMetricsPort, "metrics-port", 0, "Port serving the collector's own Prometheus metrics, 0 disables it")
	rootCmd.Flags().StringVar(&smConfigFile, "config", "", "Path to configuration file")
	rootCmd.Flags().StringVar(&smEnvFile, "env-file", "", "Path to a .env file loaded before reading the environment")
}

func checkSmartmonConfig(cfg smartmon.SmartmonConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var fields []string
			for _, fe := range validationErrors {
				fields = append(fields, fmt.Sprintf("%s (%s=%s)", fe.Field(), fe.Tag(), fe.Param()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

func validateSmartmonConfig(cfg smartmon.SmartmonConfig) {
	if err := checkSmartmonConfig(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "One or more parameters are invalid. Please provide them through flags, the config file or environment variables.")
		os.Exit(1)
	}
}
