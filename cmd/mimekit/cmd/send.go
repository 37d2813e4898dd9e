package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimekit/internal/deliver"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Assemble a manifest and deliver it",
	Long: `Assemble the document described by a YAML manifest and hand it to the
configured delivery method: file, stdout, or ses.`,
	Args: cobra.NoArgs,
	RunE: RunSend,
}

func init() {
	sendCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "path to the document manifest")
	_ = sendCmd.MarkFlagRequired("manifest")
}

// RunSend implements the send command.
func RunSend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	doc, err := buildDocument()
	if err != nil {
		return err
	}

	d, err := deliver.New(ctx, cfg, stdout)
	if err != nil {
		return err
	}

	if err := d.Deliver(ctx, doc); err != nil {
		slog.Error("delivery failed", "method", d.Name(), "error", err)
		return err
	}

	slog.Info("document delivered", "method", d.Name(), "parts", doc.Len())
	return nil
}
