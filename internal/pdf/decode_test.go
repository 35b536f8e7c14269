package pdf_test

import (
	"encoding/base64"
	"testing"

	"pdf-api/internal/pdf"
	"pdf-api/internal/pdf/pdftest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	document := pdftest.Build([]string{"hello"}, nil)

	t.Run("BareAndPrefixedMatch", func(t *testing.T) {
		bare, err := pdf.DecodeDocument(pdftest.Base64(document, false))
		require.NoError(t, err)

		prefixed, err := pdf.DecodeDocument(pdftest.Base64(document, true))
		require.NoError(t, err)

		assert.Equal(t, document, bare)
		assert.Equal(t, bare, prefixed)
	})

	t.Run("Unpadded", func(t *testing.T) {
		decoded, err := pdf.DecodeDocument(base64.RawStdEncoding.EncodeToString([]byte("%PDF-")))
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-"), decoded)
	})

	t.Run("SurroundingWhitespace", func(t *testing.T) {
		decoded, err := pdf.DecodeDocument("  " + pdftest.Base64(document, true) + "\n")
		require.NoError(t, err)
		assert.Equal(t, document, decoded)
	})

	t.Run("InvalidBase64", func(t *testing.T) {
		_, err := pdf.DecodeDocument("not*base64!")
		require.Error(t, err)
		assert.Equal(t, pdf.DecodeError, pdf.KindOf(err))
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		_, err := pdf.DecodeDocument(pdf.DocumentURIPrefix)
		require.Error(t, err)
		assert.Equal(t, pdf.DecodeError, pdf.KindOf(err))
	})

	t.Run("OtherMimePrefixIsNotStripped", func(t *testing.T) {
		_, err := pdf.DecodeDocument("data:image/png;base64," + pdftest.Base64(document, false))
		assert.Equal(t, pdf.DecodeError, pdf.KindOf(err))
	})
}

func TestEncodeImage(t *testing.T) {
	encoded := pdf.EncodeImage([]byte{0x89, 'P', 'N', 'G'})
	assert.Equal(t, "data:image/png;base64,iVBORw==", encoded)
}
