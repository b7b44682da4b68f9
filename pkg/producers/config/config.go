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

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/cobaltcore-dev/smartmon/pkg/producers/smartmon"
)

// Config is the optional configuration file. Every field left out of the file
// keeps the value given by flags.
type Config struct {
	Hostname     string   `mapstructure:"hostname"`
	Interval     int      `mapstructure:"interval"`
	SmartctlPath string   `mapstructure:"smartctl_path"`
	Sudo         *string  `mapstructure:"sudo"`
	DevRoot      string   `mapstructure:"dev_root"`
	Timeout      int      `mapstructure:"timeout"`
	MetricsPort  int      `mapstructure:"metrics_port"`
	Disks        []string `mapstructure:"disks"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	err := v.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &config, nil
}

// Apply overrides cfg with every value set in the file.
func (c *Config) Apply(cfg smartmon.SmartmonConfig) smartmon.SmartmonConfig {
	if c.Hostname != "" {
		cfg.Hostname = c.Hostname
	}
	if c.Interval != 0 {
		cfg.Interval = c.Interval
	}
	if c.SmartctlPath != "" {
		cfg.SmartctlPath = c.SmartctlPath
	}
	if c.Sudo != nil {
		cfg.Sudo = *c.Sudo
	}
	if c.DevRoot != "" {
		cfg.DevRoot = c.DevRoot
	}
	if c.Timeout != 0 {
		cfg.Timeout = c.Timeout
	}
	if c.MetricsPort != 0 {
		cfg.MetricsPort = c.MetricsPort
	}
	if len(c.Disks) > 0 {
		cfg.Disks = c.Disks
	}
	return cfg
}
