package pdf

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// pdfcpu otherwise creates a config directory under the user's home on first use
	api.DisableConfigDir()
}

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Validate runs a structural check of the document before it is handed to a renderer or extractor.
func Validate(document []byte) error {
	if err := api.Validate(bytes.NewReader(document), newConfiguration()); err != nil {
		return newError(DecodeError, fmt.Errorf("documento PDF inválido: %w", err))
	}
	return nil
}

// ReadProperties returns document level metadata read with pdfcpu, or nil if pdfcpu cannot read
// the document.
func ReadProperties(document []byte) map[string]any {
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(document), newConfiguration())
	if err != nil {
		slog.Warn("unable to read pdf properties", "error", err)
		return nil
	}

	metadata := map[string]any{
		"PDFVersion": ctx.XRefTable.Version().String(),
		"PageCount":  ctx.PageCount,
	}

	if len(ctx.Properties) > 0 {
		custom := make(map[string]any, len(ctx.Properties))
		for key, value := range ctx.Properties {
			custom[key] = value
		}
		metadata["Properties"] = custom
	}

	return metadata
}
