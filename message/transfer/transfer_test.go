package transfer_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimekit/message/transfer"
)

const dec = `1 Timothy 6:10 - For the love of money is a root of all kinds of evils. It is through this craving that some have wandered away from the faith and pierced themselves with many pangs.`
const enc = "MSBUaW1vdGh5IDY6MTAgLSBGb3IgdGhlIGxvdmUgb2YgbW9uZXkgaXMgYSByb290IG9mIGFsbCBr\r\n" +
	"aW5kcyBvZiBldmlscy4gSXQgaXMgdGhyb3VnaCB0aGlzIGNyYXZpbmcgdGhhdCBzb21lIGhhdmUg\r\n" +
	"d2FuZGVyZWQgYXdheSBmcm9tIHRoZSBmYWl0aCBhbmQgcGllcmNlZCB0aGVtc2VsdmVzIHdpdGgg\r\n" +
	"bWFueSBwYW5ncy4="

const asisString = `1234567890-=
~!@#$%^&*()_+
qwertyuiop[]\
QWERTYUIOP{}|
asdfghjkl;'
ASDFGHJKL:"
zxcvbnm,./
ZXCVBNM<>?
 
` + "\x80\x90\xa0\xb0\xc0\xd0\xe0\xf0\xff\r\n\t\b"

// we only need to test that qp is being applied, not that the encoding is
// working correctly
var qpEnc = []byte("=3D>?")
var qpDec = []byte{0x3d, 0x3e, 0x3f}

func TestNewBase64Encoder(t *testing.T) {
	t.Parallel()

	w := &bytes.Buffer{}
	bwc := transfer.NewBase64Encoder(w)
	n, err := bwc.Write([]byte(dec))
	assert.Equal(t, len(dec), n)
	assert.NoError(t, err)

	err = bwc.Close()
	assert.NoError(t, err)

	assert.Equal(t, enc, w.String())
}

func TestNewBase64Encoder_SmallWrites(t *testing.T) {
	t.Parallel()

	w := &bytes.Buffer{}
	bwc := transfer.NewBase64Encoder(w)
	for i := 0; i < len(dec); i++ {
		_, err := bwc.Write([]byte{dec[i]})
		require.NoError(t, err)
	}
	require.NoError(t, bwc.Close())

	assert.Equal(t, enc, w.String())
}

func TestNewBase64Encoder_FullLines(t *testing.T) {
	t.Parallel()

	// 57 input bytes make exactly one 76 character line
	w := &bytes.Buffer{}
	bwc := transfer.NewBase64Encoder(w)
	_, err := bwc.Write(bytes.Repeat([]byte{'x'}, 57))
	require.NoError(t, err)
	_, err = bwc.Write(bytes.Repeat([]byte{'x'}, 57))
	require.NoError(t, err)
	require.NoError(t, bwc.Close())

	line := strings.Repeat("eHh4", 19)
	assert.Equal(t, line+"\r\n"+line, w.String())
}

func TestNewAsIsEncoder(t *testing.T) {
	t.Parallel()

	w := &bytes.Buffer{}
	ae := transfer.NewAsIsEncoder(w)
	n, err := ae.Write([]byte(asisString))
	assert.Equal(t, len(asisString), n)
	assert.NoError(t, err)
	assert.NoError(t, ae.Close())
	assert.Equal(t, []byte(asisString), w.Bytes())
}

func TestNewQuotedPrintableEncoder(t *testing.T) {
	t.Parallel()

	w := &bytes.Buffer{}
	qpewc := transfer.NewQuotedPrintableEncoder(w)
	n, err := qpewc.Write(qpDec)
	assert.Equal(t, len(qpDec), n)
	assert.NoError(t, err)

	err = qpewc.Close()
	assert.NoError(t, err)

	assert.Equal(t, qpEnc, w.Bytes())
}

func TestEncodeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cte  string
		in   string
		out  string
	}{
		{"base64", transfer.Base64, dec, enc},
		{"base64 upper", "BASE64", dec, enc},
		{"quoted-printable", transfer.QuotedPrintable, string(qpDec), string(qpEnc)},
		{"7bit", transfer.Bit7, asisString, asisString},
		{"8bit", transfer.Bit8, asisString, asisString},
		{"binary", transfer.Binary, asisString, asisString},
		{"none", transfer.None, asisString, asisString},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, err := transfer.EncodeString(tt.cte, []byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.out, out)
		})
	}
}

func TestEncodeString_Unknown(t *testing.T) {
	t.Parallel()

	_, err := transfer.EncodeString("x-uuencode", []byte("abc"))
	assert.ErrorIs(t, err, transfer.ErrUnknownEncoding)
}
