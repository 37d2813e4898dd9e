// Package deliver defines where a finished document goes: a file on disk, an
// io.Writer, or AWS SES.
package deliver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/zostay/go-mimekit/internal/config"
	"github.com/zostay/go-mimekit/internal/deliver/ses"
	"github.com/zostay/go-mimekit/message"
)

var (
	// ErrUnknownMethod is returned by New when the configured delivery method
	// is not one of file, stdout, or ses.
	ErrUnknownMethod = errors.New("unknown delivery method")

	// ErrNotConfigured is returned by New when the selected method is missing
	// required settings.
	ErrNotConfigured = errors.New("delivery method is not configured")
)

// Deliverer sends a finished document somewhere.
type Deliverer interface {
	// Deliver sends the serialized document. It returns an error if delivery
	// fails.
	Deliver(ctx context.Context, doc *message.Multipart) error

	// Name returns the human-readable name of this deliverer.
	Name() string
}

// File writes the document to Path, atomically replacing any existing file.
type File struct {
	Path string
}

// Deliver writes the document with message.Multipart.WriteFile.
func (f *File) Deliver(_ context.Context, doc *message.Multipart) error {
	return doc.WriteFile(f.Path)
}

// Name returns "file".
func (f *File) Name() string {
	return config.DeliveryFile
}

// Writer copies the document to W.
type Writer struct {
	W io.Writer
}

// Deliver writes the document to the writer.
func (w *Writer) Deliver(_ context.Context, doc *message.Multipart) error {
	_, err := doc.WriteTo(w.W)
	return err
}

// Name returns "stdout".
func (w *Writer) Name() string {
	return config.DeliveryStdout
}

// New returns the Deliverer selected by cfg. The stdout method writes to out.
func New(ctx context.Context, cfg *config.Config, out io.Writer) (Deliverer, error) {
	switch cfg.Delivery.Method {
	case config.DeliveryFile:
		if cfg.Delivery.Output == "" {
			return nil, fmt.Errorf("%w: file delivery requires an output path", ErrNotConfigured)
		}
		slog.Debug("using file delivery", "path", cfg.Delivery.Output)
		return &File{Path: cfg.Delivery.Output}, nil

	case config.DeliveryStdout, "":
		slog.Debug("using stdout delivery")
		return &Writer{W: out}, nil

	case config.DeliverySES:
		if !cfg.SESConfigured() {
			return nil, fmt.Errorf("%w: ses delivery requires SES_REGION and SES_SENDER", ErrNotConfigured)
		}
		slog.Debug("using AWS SES delivery",
			"region", cfg.SES.Region,
			"sender", cfg.SES.Sender,
		)
		d, err := ses.New(ctx, ses.Config{
			Region:          cfg.SES.Region,
			AccessKeyID:     cfg.SES.AccessKeyID,
			SecretAccessKey: cfg.SES.SecretAccessKey,
			Sender:          cfg.SES.Sender,
		})
		if err != nil {
			return nil, err
		}
		return d, nil
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownMethod, cfg.Delivery.Method)
}
