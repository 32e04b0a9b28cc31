// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package config // import "planet.pub/internal/config"

import (
	"fmt"
	"time"

	"planet.pub/internal/model"
	"planet.pub/internal/version"
)

const envPrefix = "PLANET_"

var defaultUserAgent = "Planet/" + version.Version +
	" (https://github.com/planetpub/planet)"

// Options contains configuration options: the contributor list from the
// YAML file and everything else from PLANET_* environment variables.
type Options struct {
	Members []model.Contributor `yaml:"contributors" validate:"dive"`

	env EnvOptions
}

type EnvOptions struct {
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warning error"`

	Title      string `env:"TITLE" envDefault:"Planet"`
	SiteURL    string `env:"SITE_URL" validate:"omitempty,url"`
	OutputFile string `env:"OUTPUT_FILE"`

	Limit         int `env:"LIMIT" envDefault:"-1"`
	Offset        int `env:"OFFSET" validate:"min=0"`
	SummaryLength int `env:"SUMMARY_LENGTH" envDefault:"500" validate:"min=0"`

	HTTPClientTimeout   int     `env:"HTTP_CLIENT_TIMEOUT" envDefault:"30" validate:"min=1"`
	HTTPClientUserAgent string  `env:"HTTP_CLIENT_USER_AGENT"`
	WorkerPoolSize      int     `env:"WORKER_POOL_SIZE" envDefault:"8" validate:"min=1"`
	FetchRate           float64 `env:"FETCH_RATE" envDefault:"4" validate:"gt=0"`
}

func NewOptions() *Options { return &Options{} }

func (o *Options) validate() error {
	if err := Validator().Struct(&o.env); err != nil {
		return fmt.Errorf("config: invalid environment: %w", err)
	}
	if err := Validator().Struct(o); err != nil {
		return fmt.Errorf("config: invalid contributors: %w", err)
	}
	return nil
}

func (o *Options) LogFormat() string { return o.env.LogFormat }
func (o *Options) LogLevel() string  { return o.env.LogLevel }

func (o *Options) SetLogLevel(level string) { o.env.LogLevel = level }

func (o *Options) Title() string      { return o.env.Title }
func (o *Options) SiteURL() string    { return o.env.SiteURL }
func (o *Options) OutputFile() string { return o.env.OutputFile }

// Limit caps the number of aggregated posts; negative means unlimited.
func (o *Options) Limit() int { return o.env.Limit }

func (o *Options) Offset() int { return o.env.Offset }

func (o *Options) SummaryLength() int { return o.env.SummaryLength }

func (o *Options) HTTPClientTimeout() time.Duration {
	return time.Duration(o.env.HTTPClientTimeout) * time.Second
}

func (o *Options) HTTPClientUserAgent() string {
	if s := o.env.HTTPClientUserAgent; s != "" {
		return s
	}
	return defaultUserAgent
}

func (o *Options) WorkerPoolSize() int { return o.env.WorkerPoolSize }

func (o *Options) FetchRate() float64 { return o.env.FetchRate }

func (o *Options) Contributors() []model.Contributor { return o.Members }
