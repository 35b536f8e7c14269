package pdf

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/gen2brain/go-fitz"
)

var inlineImage = regexp.MustCompile(`!\[\]\(data:image/[^)]+\)`)

// ToMarkdown converts each page's html layout to markdown. Inline base64 images are dropped.
func ToMarkdown(ctx context.Context, document []byte) (string, error) {
	doc, err := fitz.NewFromMemory(document)
	if err != nil {
		return "", newError(ExtractionError, fmt.Errorf("não foi possível abrir o documento: %w", err))
	}
	defer doc.Close()

	converter := md.NewConverter("", true, nil)

	numPages := doc.NumPage()
	pages := make([]string, 0, numPages)
	for i := 0; i < numPages; i++ {
		if err := ctx.Err(); err != nil {
			return "", newError(ExtractionError, err)
		}

		html, err := doc.HTML(i, true)
		if err != nil {
			return "", newError(ExtractionError, fmt.Errorf("falha ao ler a página %d: %w", i+1, err))
		}

		text, err := converter.ConvertString(html)
		if err != nil {
			return "", newError(ExtractionError, fmt.Errorf("falha ao converter a página %d para markdown: %w", i+1, err))
		}

		pages = append(pages, strings.TrimSpace(inlineImage.ReplaceAllString(text, "")))
	}

	return strings.Join(pages, pageSeparator), nil
}
