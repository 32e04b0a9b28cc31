// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "planet.pub/internal/config"

// Opts holds parsed configuration options.
var Opts = NewOptions()

// Load loads the contributor list from yamlFile (if not empty) and
// environment variables, optionally seeded from an .env file.
func Load(yamlFile, envFile string) error {
	p := NewParser()

	opts, err := p.ParseEnvironmentVariables(envFile)
	if err != nil {
		return err
	}

	if yamlFile != "" {
		if err := p.ParseYAMLFile(yamlFile); err != nil {
			return err
		}
	}

	if err := opts.validate(); err != nil {
		return err
	}
	Opts = opts
	return nil
}
