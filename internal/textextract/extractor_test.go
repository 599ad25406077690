package textextract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/recruit-crm/constants"
)

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(nil)

	got, err := e.Extract([]byte("John Smith\njohn@acme.com"), constants.MIMEPlain)
	require.NoError(t, err)
	assert.Equal(t, "John Smith\njohn@acme.com", got)
}

func TestExtractPlainTextWithParameters(t *testing.T) {
	e := NewExtractor(nil)

	got, err := e.Extract([]byte("hello"), "text/plain; charset=utf-8")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestExtractUnsupportedType(t *testing.T) {
	e := NewExtractor(nil)

	_, err := e.Extract([]byte("x"), "image/png")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractLegacyWordStripsBinary(t *testing.T) {
	e := NewExtractor(nil)
	data := append([]byte{0x00, 0x01, 0xff}, []byte("Jane Doe")...)
	data = append(data, 0x00, 0x02)

	got, err := e.Extract(data, constants.MIMEDoc)
	require.NoError(t, err)
	assert.Contains(t, got, "Jane Doe")
	assert.NotContains(t, got, "\x00")
}

func TestExtractInvalidUTF8FallsBackToStrip(t *testing.T) {
	e := NewExtractor(nil)
	data := append([]byte("ok "), 0xff, 0xfe)
	data = append(data, []byte("done")...)

	got, err := e.Extract(data, constants.MIMEPlain)
	require.NoError(t, err)
	assert.Contains(t, got, "ok")
	assert.Contains(t, got, "done")
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b\n\nc", Normalize("a  \t b\n\n\n\nc"))
	assert.Equal(t, "x\ny", Normalize("x\r\ny  "))
}
