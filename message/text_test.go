package message_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-mimekit/header"
	"github.com/zostay/go-mimekit/message"
)

func TestNewText(t *testing.T) {
	t.Parallel()

	txt := message.NewText("hello")

	assert.Equal(t, header.Set{
		"Content-Type":              `text/plain; charset="us-ascii"`,
		"MIME-Version":              "1.0",
		"Content-Transfer-Encoding": "7bit",
	}, txt.GetHeader())
	assert.Equal(t, "hello", txt.GetData())

	const expect = "Content-Transfer-Encoding: 7bit\r\n" +
		"Content-Type: text/plain; charset=\"us-ascii\"\r\n" +
		"MIME-Version: 1.0\r\n" +
		"\r\n" +
		"hello"
	assert.Equal(t, expect, txt.String())
}

func TestNewTextCharset(t *testing.T) {
	t.Parallel()

	txt, err := message.NewTextCharset("héllo", "utf-8")
	require.NoError(t, err)
	assert.Equal(t, `text/plain; charset="UTF-8"`, txt.Header[header.ContentType])
	assert.Equal(t, "héllo", txt.Data)

	_, err = message.NewTextCharset("hello", "klingon")
	assert.ErrorIs(t, err, message.ErrUnknownCharset)
}
