package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ekazakova/dataset-packager/internal/config"
	"github.com/ekazakova/dataset-packager/internal/logger"
	"github.com/ekazakova/dataset-packager/internal/service/packager"
	"github.com/ekazakova/dataset-packager/internal/version"
)

var (
	// outputDir overrides the manifest's output directory when set.
	outputDir string

	// testMode bypasses the placeholder guard for dry runs.
	testMode bool

	// logLevel controls log verbosity.
	logLevel string

	// rootCmd represents the base command for packaging a catalogue.
	rootCmd = &cobra.Command{
		Use:   "dataset-packager [manifest]",
		Short: "Package a tabular catalogue with its metadata into one archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			manifestPath := config.DefaultManifestFilename
			if len(args) > 0 {
				manifestPath = args[0]
			}

			ctx = logger.WithKV(ctx, "manifest", manifestPath)

			manifest, err := config.Load(manifestPath)
			if err != nil {
				return err
			}

			if outputDir != "" {
				manifest.OutputDir = outputDir
			}

			options := &packager.Options{
				Name:               manifest.Name,
				Summary:            manifest.Summary,
				User:               manifest.User,
				Contact:            manifest.Contact,
				ScriptName:         manifest.ScriptName,
				Version:            manifest.Version,
				Table:              manifest.Table(),
				ColumnDescriptions: manifest.ColumnDescriptions,
				ColumnUCDs:         manifest.ColumnUCDs,
				ColumnUnits:        manifest.ColumnUnits,
				Readme:             manifest.Readme,
				TestMode:           testMode,
				OutputDir:          manifest.OutputDir,
			}

			if len(manifest.Extra) > 0 {
				options.Extra = manifest.Extra
			}

			_, err = packager.Run(ctx, options)

			return err
		},
	}
)

// Execute runs the dataset-packager CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "", "directory for the archive (overrides the manifest)")
	rootCmd.Flags().BoolVarP(&testMode, "test-mode", "t", false, "bypass the placeholder check for dry runs")
	rootCmd.Flags().StringVarP(&logLevel, "log-level", "l", "info", "log level (debug, info, warn, error)")
}
