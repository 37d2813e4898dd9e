package transfer

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	None            = ""                 // bytes will be left as-is
	Bit7            = "7bit"             // bytes will be left as-is
	Bit8            = "8bit"             // bytes will be left as-is
	Binary          = "binary"           // bytes will be left as-is
	QuotedPrintable = "quoted-printable" // bytes will be transformed into quoted-printable
	Base64          = "base64"           // bytes will be transformed into base64
)

// ErrUnknownEncoding is returned by EncodeString when there is no Transcoding
// for the named Content-Transfer-Encoding.
var ErrUnknownEncoding = errors.New("unknown content-transfer-encoding")

// Transcoding describes how to apply a transfer encoding.
type Transcoding struct {
	// Encoder returns an io.WriteCloser, which will encode binary data and
	// write the encoded form to the given io.Writer. You must call Close() on
	// the returned io.WriteCloser when you are finished.
	Encoder func(io.Writer) io.WriteCloser
}

// AsIsTranscoder is just a shortcut to a no-op encoder.
var AsIsTranscoder = Transcoding{NewAsIsEncoder}

// Transcodings defines the supported Content-Transfer-Encodings and how to
// apply them. Keys are lowercase.
var Transcodings = map[string]Transcoding{
	None:            AsIsTranscoder,
	Bit7:            AsIsTranscoder,
	Bit8:            AsIsTranscoder,
	Binary:          AsIsTranscoder,
	QuotedPrintable: {NewQuotedPrintableEncoder},
	Base64:          {NewBase64Encoder},
}

// EncodeString encodes b with the named Content-Transfer-Encoding and returns
// the result. The name is matched without regard to case.
func EncodeString(cte string, b []byte) (string, error) {
	tc, ok := Transcodings[strings.ToLower(cte)]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownEncoding, cte)
	}

	var sb strings.Builder
	w := tc.Encoder(&sb)
	if _, err := w.Write(b); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
