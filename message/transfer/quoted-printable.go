package transfer

import (
	"io"
	"mime/quotedprintable"
)

// NewQuotedPrintableEncoder will transform all bytes written to the returned
// io.WriteCloser into quoted-printable form and write them to the given
// io.Writer.
func NewQuotedPrintableEncoder(w io.Writer) io.WriteCloser {
	return quotedprintable.NewWriter(w)
}
