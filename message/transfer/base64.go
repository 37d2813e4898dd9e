package transfer

import (
	"encoding/base64"
	"io"
)

const defaultBase64LineLength = 76

var defaultBase64LineBreak = []byte{'\r', '\n'}

// newlineWriter breaks the output into lines of every bytes. No break follows
// the last line.
type newlineWriter struct {
	every int
	acc   int
	lbr   []byte
	w     io.Writer
}

func (nw *newlineWriter) Write(b []byte) (int, error) {
	n := 0
	for len(b) > 0 {
		if nw.acc == nw.every {
			if _, err := nw.w.Write(nw.lbr); err != nil {
				return n, err
			}
			nw.acc = 0
		}

		l := nw.every - nw.acc
		if l > len(b) {
			l = len(b)
		}

		wn, err := nw.w.Write(b[:l])
		n += wn
		nw.acc += wn
		if err != nil {
			return n, err
		}

		b = b[l:]
	}

	return n, nil
}

// NewBase64Encoder will translate all bytes written to the returned
// io.WriteCloser into base64 encoding and write those to the given io.Writer
// in lines of 76 characters separated by CRLF.
func NewBase64Encoder(w io.Writer) io.WriteCloser {
	return base64.NewEncoder(base64.StdEncoding, &newlineWriter{
		every: defaultBase64LineLength,
		lbr:   defaultBase64LineBreak,
		w:     w,
	})
}
