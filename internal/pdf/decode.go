package pdf

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	DocumentURIPrefix = "data:application/pdf;base64,"
	ImageURIPrefix    = "data:image/png;base64,"
)

// DecodeDocument strips an optional data URI prefix and decodes the remaining base64 payload.
func DecodeDocument(encoded string) ([]byte, error) {
	payload := strings.TrimPrefix(strings.TrimSpace(encoded), DocumentURIPrefix)

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		// some clients drop the padding
		raw, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
		if rawErr != nil {
			return nil, newError(DecodeError, fmt.Errorf("base64 inválido: %w", err))
		}
		data = raw
	}

	if len(data) == 0 {
		return nil, newError(DecodeError, errors.New("documento vazio"))
	}

	return data, nil
}

func EncodeImage(png []byte) string {
	return ImageURIPrefix + base64.StdEncoding.EncodeToString(png)
}
