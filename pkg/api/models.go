package api

import "time"

type ConvertRequest struct {
	PdfBase64  string  `json:"pdfBase64"`
	PageNumber int     `json:"pageNumber"`
	Scale      float64 `json:"scale"`
}

type ConvertResponse struct {
	Success     bool   `json:"success"`
	ImageBase64 string `json:"imageBase64"`
	Message     string `json:"message"`
}

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

type ExtractTextRequest struct {
	PdfBase64 string `json:"pdfBase64"`
	Format    string `json:"format"`
}

type ExtractTextResponse struct {
	Success  bool           `json:"success"`
	Text     string         `json:"text"`
	NumPages int            `json:"numPages"`
	Info     map[string]any `json:"info"`
	Metadata map[string]any `json:"metadata"`
	Message  string         `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status    string     `json:"status"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

type EndpointUsage struct {
	Name   string            `json:"name"`
	Method string            `json:"method"`
	URL    string            `json:"url"`
	Body   map[string]string `json:"body"`
}

type IndexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
	Usage     []EndpointUsage   `json:"usage"`
}
