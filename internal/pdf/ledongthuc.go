package pdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

type LedongthucExtractor struct{}

func NewLedongthucExtractor() *LedongthucExtractor {
	return &LedongthucExtractor{}
}

func (e *LedongthucExtractor) Extract(ctx context.Context, document []byte) (result *Extraction, err error) {
	// the reader panics on some malformed cross reference tables
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, newError(ExtractionError, fmt.Errorf("documento malformado: %v", r))
		}
	}()

	reader, err := lpdf.NewReader(bytes.NewReader(document), int64(len(document)))
	if err != nil {
		return nil, newError(ExtractionError, fmt.Errorf("não foi possível abrir o documento: %w", err))
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, newError(ExtractionError, err)
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, newError(ExtractionError, fmt.Errorf("falha ao ler a página %d: %w", i, err))
		}
		pages = append(pages, text)
	}

	return &Extraction{
		Text:     strings.Join(pages, pageSeparator),
		NumPages: numPages,
		Info:     trailerInfo(reader.Trailer().Key("Info")),
		Metadata: ReadProperties(document),
	}, nil
}

func trailerInfo(dict lpdf.Value) map[string]any {
	info := make(map[string]any)
	if dict.Kind() != lpdf.Dict {
		return info
	}

	for _, key := range dict.Keys() {
		value := dict.Key(key)
		switch value.Kind() {
		case lpdf.String:
			info[key] = value.Text()
		case lpdf.Name:
			info[key] = value.Name()
		case lpdf.Bool:
			info[key] = value.Bool()
		case lpdf.Integer:
			info[key] = value.Int64()
		case lpdf.Real:
			info[key] = value.Float64()
		}
	}

	return info
}
