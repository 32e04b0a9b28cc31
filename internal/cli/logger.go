// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli // import "planet.pub/internal/cli"

import (
	"log/slog"
	"os"

	"planet.pub/internal/config"
)

func initializeDefaultLogger() {
	opts := &slog.HandlerOptions{Level: parseLogLevel(config.Opts.LogLevel())}

	var h slog.Handler
	switch config.Opts.LogFormat() {
	case "json":
		h = slog.NewJSONHandler(os.Stderr, opts)
	default:
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
