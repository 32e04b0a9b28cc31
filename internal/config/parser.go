// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "planet.pub/internal/config"

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.yaml.in/yaml/v4"
)

// Parser handles configuration parsing.
type Parser struct {
	opts *Options
}

// NewParser returns a new Parser.
func NewParser() *Parser { return &Parser{opts: NewOptions()} }

// ParseEnvironmentVariables loads configuration values from environment
// variables, optionally seeded from an .env file first.
func (p *Parser) ParseEnvironmentVariables(envFile string) (*Options, error) {
	envOpts := env.Options{Prefix: envPrefix}

	if envFile != "" {
		envMap, err := godotenv.Read(envFile)
		if err != nil {
			return nil, fmt.Errorf("config: failed parse %q: %w", envFile, err)
		}
		err = env.ParseWithOptions(&p.opts.env, env.Options{
			Prefix:      envPrefix,
			Environment: envMap,
		})
		if err != nil {
			return nil, fmt.Errorf("config: failed parse %q: %w", envFile, err)
		}
	}

	if err := env.ParseWithOptions(&p.opts.env, envOpts); err != nil {
		return nil, fmt.Errorf("config: failed parse env vars: %w", err)
	}
	return p.opts, nil
}

// ParseYAMLFile loads the contributor list.
func (p *Parser) ParseYAMLFile(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: failed read %q: %w", filename, err)
	}

	if err := yaml.Unmarshal(b, p.opts); err != nil {
		return fmt.Errorf("config: failed parse %q: %w", filename, err)
	}
	return nil
}
