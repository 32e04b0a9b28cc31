// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli // import "planet.pub/internal/cli"

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"planet.pub/internal/config"
	"planet.pub/internal/planet"
)

// generate runs one aggregation pass and writes the output document to the
// configured file, or stdout when none is configured.
func generate(ctx context.Context) error {
	out, err := planet.Generate(ctx)
	if err != nil {
		return err
	}

	filename := config.Opts.OutputFile()
	if filename == "" {
		_, err := os.Stdout.WriteString(out)
		return err
	}

	if err := os.WriteFile(filename, []byte(out), 0o644); err != nil {
		return fmt.Errorf("cli: write output %q: %w", filename, err)
	}
	slog.Info("planet generated", slog.String("output", filename))
	return nil
}
