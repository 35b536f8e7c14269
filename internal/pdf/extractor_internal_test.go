package pdf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func padded(value string) string {
	return value + strings.Repeat("\x00", 256-len(value))
}

func TestFitzInfoTrimsPadding(t *testing.T) {
	info := fitzInfo(map[string]string{
		"format":     padded("PDF 1.4"),
		"encryption": padded("None"),
		"title":      padded("Invoice"),
		"author":     padded(""),
	})

	assert.Equal(t, "Invoice", info["Title"])
	assert.Equal(t, "1.4", info["PDFFormatVersion"])
	assert.Equal(t, false, info["IsEncrypted"])
	assert.NotContains(t, info, "Author")
}

func TestFitzInfoEncrypted(t *testing.T) {
	info := fitzInfo(map[string]string{"encryption": padded("Standard V2 R3 128-bit RC4")})
	assert.Equal(t, true, info["IsEncrypted"])
}
