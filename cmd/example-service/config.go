// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2023-present Datadog, Inc.

package main

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// Config drives the example-service binary.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Service  ServiceConfig `yaml:"service"`
}

// ServiceConfig configures the service-mode behavior.
type ServiceConfig struct {
	// Name is the service name the binary was registered under.
	Name string `yaml:"name"`

	// OutputFile is where the service loop records that it ran.
	OutputFile string `yaml:"output_file"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Service: ServiceConfig{
			Name:       "example-service",
			OutputFile: `C:\Windows\Temp\test.txt`,
		},
	}
}

// loadConfig reads the yaml config at path on top of the defaults. An
// empty path or a missing file keeps the defaults.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "unable to read the config file")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "unable to parse the config file")
	}
	return cfg, nil
}
