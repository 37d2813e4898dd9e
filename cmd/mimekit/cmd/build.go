package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mimekit/header"
	"github.com/zostay/go-mimekit/internal/manifest"
	"github.com/zostay/go-mimekit/message"
)

var (
	manifestFile string
	outputFile   string
	draft        bool

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Assemble a manifest into a MIME document",
		Long: `Assemble the document described by a YAML manifest and write it to a
file, or to standard output when no file is named. Use a .eml extension for
a message ready to send.`,
		Args: cobra.NoArgs,
		RunE: RunBuild,
	}
)

func init() {
	buildCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "path to the document manifest")
	buildCmd.Flags().StringVarP(&outputFile, "output", "o", "", "file to write the document to")
	buildCmd.Flags().BoolVar(&draft, "draft", false, "mark the document as an unsent draft")
	_ = buildCmd.MarkFlagRequired("manifest")
}

// RunBuild implements the build command.
func RunBuild(cmd *cobra.Command, _ []string) error {
	doc, err := buildDocument()
	if err != nil {
		return err
	}

	if outputFile == "" {
		_, err = doc.WriteTo(stdout)
		return err
	}

	if err := doc.WriteFile(outputFile); err != nil {
		return err
	}

	slog.Info("document written",
		"path", outputFile,
		"parts", doc.Len(),
		"bytes", len(doc.String()),
	)
	return nil
}

func buildDocument() (*message.Multipart, error) {
	m, err := manifest.Load(manifestFile)
	if err != nil {
		return nil, err
	}

	doc, err := m.Build()
	if err != nil {
		return nil, err
	}

	if draft {
		doc.SetHeader(header.XUnsent, "1")
	}

	slog.Debug("document assembled",
		"manifest", manifestFile,
		"boundary", doc.Boundary(),
		"parts", doc.Len(),
	)
	return doc, nil
}
