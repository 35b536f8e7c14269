package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

type Extraction struct {
	Text     string
	NumPages int
	Info     map[string]any
	Metadata map[string]any
}

type Extractor interface {
	Extract(ctx context.Context, document []byte) (*Extraction, error)
}

const (
	EngineFitz       = "fitz"
	EngineLedongthuc = "ledongthuc"
)

func NewExtractor(engine string) (Extractor, error) {
	switch engine {
	case EngineFitz, "":
		return NewFitzExtractor(), nil
	case EngineLedongthuc:
		return NewLedongthucExtractor(), nil
	default:
		return nil, fmt.Errorf("unknown pdf text engine '%s'", engine)
	}
}

const pageSeparator = "\n\n"

type FitzExtractor struct{}

func NewFitzExtractor() *FitzExtractor {
	return &FitzExtractor{}
}

func (e *FitzExtractor) Extract(ctx context.Context, document []byte) (*Extraction, error) {
	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return nil, newError(ExtractionError, fmt.Errorf("não foi possível abrir o documento: %w", err))
	}
	defer doc.Close()

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return nil, newError(ExtractionError, err)
		}

		text, err := doc.Text(i)
		if err != nil {
			return nil, newError(ExtractionError, fmt.Errorf("falha ao ler a página %d: %w", i+1, err))
		}
		pages = append(pages, text)
	}

	return &Extraction{
		Text:     strings.Join(pages, pageSeparator),
		NumPages: numPages,
		Info:     fitzInfo(doc.Metadata()),
		Metadata: ReadProperties(document),
	}, nil
}

// mupdf metadata keys mapped to the names used by the pdf info dictionary.
var fitzInfoKeys = map[string]string{
	"title":        "Title",
	"author":       "Author",
	"subject":      "Subject",
	"keywords":     "Keywords",
	"creator":      "Creator",
	"producer":     "Producer",
	"creationDate": "CreationDate",
	"modDate":      "ModDate",
}

// mupdf returns fixed size values padded with NUL bytes.
func trimMetadata(meta map[string]string) map[string]string {
	trimmed := make(map[string]string, len(meta))
	for key, value := range meta {
		trimmed[key] = strings.TrimSpace(strings.TrimRight(value, "\x00"))
	}
	return trimmed
}

func fitzInfo(raw map[string]string) map[string]any {
	meta := trimMetadata(raw)
	info := make(map[string]any)

	for key, name := range fitzInfoKeys {
		if value := meta[key]; value != "" {
			info[name] = value
		}
	}

	// format is reported as e.g. "PDF 1.7"
	if format := meta["format"]; format != "" {
		info["PDFFormatVersion"] = strings.TrimPrefix(format, "PDF ")
	}

	encryption := meta["encryption"]
	info["IsEncrypted"] = encryption != "" && encryption != "None"

	return info
}
