package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"log/slog"

	"github.com/gen2brain/go-fitz"
)

const (
	DefaultScale = 2.0

	// pdf user space is 72 units per inch, so scale 1 renders at 72 dpi.
	pointsPerInch = 72.0
)

type Renderer interface {
	// RenderPage renders the 1-indexed page of the document to PNG.
	RenderPage(ctx context.Context, document []byte, page int, scale float64) ([]byte, error)
}

type FitzRenderer struct{}

func NewFitzRenderer() *FitzRenderer {
	return &FitzRenderer{}
}

func (r *FitzRenderer) RenderPage(ctx context.Context, document []byte, page int, scale float64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, newError(ConversionError, err)
	}

	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return nil, newError(ConversionError, fmt.Errorf("não foi possível abrir o documento: %w", err))
	}
	defer doc.Close()

	numPages := doc.NumPage()
	if page < 1 || page > numPages {
		slog.Info("requested page out of range", "page", page, "num_pages", numPages)
		return nil, invalidPage(page)
	}

	if err := ctx.Err(); err != nil {
		return nil, newError(ConversionError, err)
	}

	img, err := doc.ImageDPI(page-1, scale*pointsPerInch)
	if err != nil {
		return nil, newError(ConversionError, fmt.Errorf("falha ao renderizar a página %d: %w", page, err))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, newError(ConversionError, fmt.Errorf("falha ao codificar a página %d como PNG: %w", page, err))
	}

	return buf.Bytes(), nil
}
