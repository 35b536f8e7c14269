package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"pdf-api/internal/pdf"
	"pdf-api/pkg/api"
	"time"

	"github.com/go-chi/chi/v5"
)

const (
	DefaultPageNumber = 1
	DefaultMaxScale   = 10.0

	documentField   = "pdfBase64"
	pageNumberField = "pageNumber"
	scaleField      = "scale"
	formatField     = "format"
)

type PdfService struct {
	renderer  pdf.Renderer
	extractor pdf.Extractor
	validate  bool
	maxScale  float64
}

func NewPdfService(renderer pdf.Renderer, extractor pdf.Extractor, validate bool) *PdfService {
	return &PdfService{renderer: renderer, extractor: extractor, validate: validate, maxScale: DefaultMaxScale}
}

func (s *PdfService) AddRoutes(r chi.Router) {
	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed(""))

	r.Get("/", RestHandler(Index("/health")))
	r.Get("/health", RestHandler(Health(false)))

	r.Route("/api/pdf", func(r chi.Router) {
		r.MethodNotAllowed(MethodNotAllowed(http.MethodPost))

		r.Options("/convert", Preflight)
		r.Post("/convert", RestHandler(s.Convert))

		r.Options("/extract-text", Preflight)
		r.Post("/extract-text", RestHandler(s.ExtractText))
	})
}

func (s *PdfService) ParseConvertRequest(r *http.Request) (api.ConvertRequest, error) {
	body, err := ParseRequest(r)
	if err != nil {
		return api.ConvertRequest{}, err
	}

	var req api.ConvertRequest
	if req.PdfBase64, err = body.RequireString(documentField); err != nil {
		return req, err
	}
	if req.PageNumber, err = body.OptionalPositiveInt(pageNumberField, DefaultPageNumber); err != nil {
		return req, err
	}
	if req.Scale, err = body.OptionalPositiveFloat(scaleField, pdf.DefaultScale, s.maxScale); err != nil {
		return req, err
	}
	return req, nil
}

func (s *PdfService) Convert(r *http.Request) (any, error) {
	req, err := s.ParseConvertRequest(r)
	if err != nil {
		return nil, err
	}

	document, err := s.decode(req.PdfBase64)
	if err != nil {
		return nil, conversionFailed(err)
	}

	start := time.Now()
	image, err := s.renderer.RenderPage(r.Context(), document, req.PageNumber, req.Scale)
	if err != nil {
		slog.Error("error converting pdf", "page", req.PageNumber, "scale", req.Scale, "error", err)
		return nil, conversionFailed(err)
	}

	slog.Info("converted pdf page", "page", req.PageNumber, "scale", req.Scale, "pdf_bytes", len(document), "png_bytes", len(image), "duration", time.Since(start))

	return api.ConvertResponse{
		Success:     true,
		ImageBase64: pdf.EncodeImage(image),
		Message:     "PDF convertido com sucesso",
	}, nil
}

func (s *PdfService) ParseExtractTextRequest(r *http.Request) (api.ExtractTextRequest, error) {
	body, err := ParseRequest(r)
	if err != nil {
		return api.ExtractTextRequest{}, err
	}

	var req api.ExtractTextRequest
	if req.PdfBase64, err = body.RequireString(documentField); err != nil {
		return req, err
	}
	req.Format, err = body.OptionalEnum(formatField, api.FormatText, api.FormatText, api.FormatMarkdown)
	return req, err
}

func (s *PdfService) ExtractText(r *http.Request) (any, error) {
	req, err := s.ParseExtractTextRequest(r)
	if err != nil {
		return nil, err
	}

	document, err := s.decode(req.PdfBase64)
	if err != nil {
		return nil, extractionFailed(err)
	}

	start := time.Now()
	result, err := s.extractor.Extract(r.Context(), document)
	if err != nil {
		slog.Error("error extracting pdf text", "error", err)
		return nil, extractionFailed(err)
	}

	if req.Format == api.FormatMarkdown {
		markdown, err := pdf.ToMarkdown(r.Context(), document)
		if err != nil {
			slog.Error("error converting pdf to markdown", "error", err)
			return nil, extractionFailed(err)
		}
		result.Text = markdown
	}

	slog.Info("extracted pdf text", "format", req.Format, "num_pages", result.NumPages, "pdf_bytes", len(document), "text_length", len(result.Text), "duration", time.Since(start))

	return api.ExtractTextResponse{
		Success:  true,
		Text:     result.Text,
		NumPages: result.NumPages,
		Info:     result.Info,
		Metadata: result.Metadata,
		Message:  "Texto extraído com sucesso",
	}, nil
}

func (s *PdfService) decode(encoded string) ([]byte, error) {
	document, err := pdf.DecodeDocument(encoded)
	if err != nil {
		return nil, err
	}

	if s.validate {
		if err := pdf.Validate(document); err != nil {
			return nil, err
		}
	}

	return document, nil
}

func conversionFailed(err error) error {
	return CodedError(http.StatusInternalServerError, fmt.Errorf("Falha ao converter PDF: %w", err))
}

func extractionFailed(err error) error {
	return CodedError(http.StatusInternalServerError, fmt.Errorf("Falha ao extrair texto do PDF: %w", err))
}

// Health reports liveness. The serverless functions include a timestamp.
func Health(withTimestamp bool) func(r *http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		res := api.HealthResponse{Status: "ok", Message: "API está funcionando"}
		if withTimestamp {
			now := time.Now().UTC()
			res.Timestamp = &now
		}
		return res, nil
	}
}

// Index lists the available endpoints. healthPath differs between the server and the functions.
func Index(healthPath string) func(r *http.Request) (any, error) {
	return func(r *http.Request) (any, error) {
		return api.IndexResponse{
			Message: "API de Conversão e Extração de PDF",
			Endpoints: map[string]string{
				"health":      "GET " + healthPath,
				"convert":     "POST /api/pdf/convert",
				"extractText": "POST /api/pdf/extract-text",
			},
			Usage: []api.EndpointUsage{
				{
					Name:   "Converter PDF para Imagem",
					Method: http.MethodPost,
					URL:    "/api/pdf/convert",
					Body: map[string]string{
						documentField:   "string (base64 do PDF)",
						pageNumberField: "number (opcional, padrão: 1)",
						scaleField:      "number (opcional, padrão: 2.0)",
					},
				},
				{
					Name:   "Extrair Texto do PDF",
					Method: http.MethodPost,
					URL:    "/api/pdf/extract-text",
					Body: map[string]string{
						documentField: "string (base64 do PDF)",
						formatField:   "string (opcional, text ou markdown, padrão: text)",
					},
				},
			},
		}, nil
	}
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, CodedErrorf(http.StatusNotFound, "Rota não encontrada"))
}

func Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func MethodNotAllowed(allowed string) http.HandlerFunc {
	message := "Método não permitido"
	if allowed != "" {
		message += ". Use " + allowed
	}
	return func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, CodedErrorf(http.StatusMethodNotAllowed, "%s", message))
	}
}
