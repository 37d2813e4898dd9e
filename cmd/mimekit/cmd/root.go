// Package cmd implements the mimekit command, which assembles MIME documents
// from YAML manifests.
package cmd

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimekit/internal/config"
)

var (
	configFile string
	cfg        *config.Config

	rootCmd = &cobra.Command{
		Use:               "mimekit",
		Short:             "Build multipart MIME documents",
		SilenceUsage:      true,
		PersistentPreRunE: loadConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to a YAML configuration file")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(sendCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	var err error
	if configFile != "" {
		cfg, err = config.LoadFromFile(configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	setupLogging(cmd.ErrOrStderr(), cfg)
	return nil
}

func setupLogging(w io.Writer, cfg *config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}

	var handler slog.Handler
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// stdout is where documents go when no output file is named.
var stdout io.Writer = os.Stdout
