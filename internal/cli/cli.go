// SPDX-FileCopyrightText: Copyright The Planet Authors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cli // import "planet.pub/internal/cli"

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planet.pub/internal/config"
	"planet.pub/internal/version"
)

var (
	flagContributors string
	flagEnvFile      string
	flagDebugMode    bool
)

var Cmd = cobra.Command{
	Use:     "planet",
	Short:   "Planet aggregates many contributor feeds into one.",
	Version: version.Version,

	PersistentPreRunE: persistentPreRunE,

	RunE: func(cmd *cobra.Command, args []string) error {
		return generate(cmd.Context())
	},
}

var configDumpCmd = cobra.Command{
	Use:   "config-dump",
	Short: "Print parsed configuration values",
	Args:  cobra.ExactArgs(0),

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%+v\n", config.Opts)
	},
}

var versionCmd = cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.ExactArgs(0),

	// Build info needs no configuration.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return nil
	},

	Run: func(cmd *cobra.Command, args []string) {
		info := version.New()
		fmt.Println("Version:", info.Version())
		fmt.Println("Commit:", info.Commit())
		fmt.Println("Build Date:", info.BuildDate())
	},
}

func init() {
	Cmd.PersistentFlags().StringVarP(&flagContributors, "contributors", "f",
		"contributors.yaml", "Path to the contributor list")
	Cmd.PersistentFlags().StringVarP(&flagEnvFile, "config-file", "c", "",
		"Path to .env configuration file")
	Cmd.PersistentFlags().BoolVarP(&flagDebugMode, "debug", "d", false,
		"Show debug logs")

	Cmd.AddCommand(&configDumpCmd)
	Cmd.AddCommand(&versionCmd)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// Don't show usage on app errors.
	// https://github.com/spf13/cobra/issues/340#issuecomment-378726225
	cmd.SilenceUsage = true

	if err := config.Load(flagContributors, flagEnvFile); err != nil {
		return err
	} else if flagDebugMode {
		config.Opts.SetLogLevel("debug")
	}

	initializeDefaultLogger()
	return nil
}

func Execute() {
	if err := Cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
