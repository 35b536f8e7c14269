package functions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	backend "pdf-api/internal/api"
	"pdf-api/internal/config"
	"pdf-api/internal/pdf"
	"pdf-api/internal/pdf/pdftest"
	"pdf-api/pkg/api"
	"pdf-api/pkg/functions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFunctions(t *testing.T) *functions.Functions {
	t.Helper()
	fns, err := functions.New(config.Config{
		MaxBodyBytes:   1 << 20,
		RequestTimeout: 10 * time.Second,
		TextEngine:     pdf.EngineFitz,
	})
	require.NoError(t, err)
	return fns
}

func serve(handler http.Handler, method string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestUnknownTextEngine(t *testing.T) {
	_, err := functions.New(config.Config{TextEngine: "unknown"})
	assert.Error(t, err)
}

func TestHealthFunction(t *testing.T) {
	rec := serve(newFunctions(t).Health(), http.MethodGet, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res api.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res.Status)
	require.NotNil(t, res.Timestamp)
	assert.WithinDuration(t, time.Now(), *res.Timestamp, time.Minute)
}

func TestIndexFunction(t *testing.T) {
	rec := serve(newFunctions(t).Index(), http.MethodGet, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var res api.IndexResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "GET /api/health", res.Endpoints["health"])
}

func TestConvertFunction(t *testing.T) {
	convert := newFunctions(t).Convert()
	document := pdftest.Build([]string{"hello"}, nil)

	body, err := json.Marshal(map[string]any{"pdfBase64": pdftest.Base64(document, true), "scale": 0.5})
	require.NoError(t, err)

	rec := serve(convert, http.MethodPost, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res api.ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.True(t, strings.HasPrefix(res.ImageBase64, "data:image/png;base64,"))

	body, err = json.Marshal(map[string]any{"pdfBase64": pdftest.Base64(document, false), "pageNumber": 2})
	require.NoError(t, err)

	rec = serve(convert, http.MethodPost, body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "página 2")
}

func TestExtractTextFunction(t *testing.T) {
	extract := newFunctions(t).ExtractText()
	document := pdftest.Build([]string{"function text"}, nil)

	body, err := json.Marshal(map[string]any{"pdfBase64": pdftest.Base64(document, false)})
	require.NoError(t, err)

	rec := serve(extract, http.MethodPost, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res api.ExtractTextResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 1, res.NumPages)
	assert.Contains(t, res.Text, "function text")

	rec = serve(extract, http.MethodPost, []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFunctionMethods(t *testing.T) {
	fns := newFunctions(t)

	for _, handler := range []http.Handler{fns.Convert(), fns.ExtractText()} {
		rec := serve(handler, http.MethodGet, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

		var res api.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.False(t, res.Success)
		assert.Equal(t, "Método não permitido. Use POST", res.Error)

		rec = serve(handler, http.MethodOptions, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestFunctionBodyLimit(t *testing.T) {
	fns, err := functions.New(config.Config{MaxBodyBytes: 16, RequestTimeout: time.Second})
	require.NoError(t, err)

	rec := serve(fns.ExtractText(), http.MethodPost, []byte(`{"pdfBase64": "`+strings.Repeat("A", 64)+`"}`))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

type blockingRenderer struct{}

func (blockingRenderer) RenderPage(ctx context.Context, document []byte, page int, scale float64) ([]byte, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestConvertFunctionTimeout(t *testing.T) {
	cfg := config.Config{MaxBodyBytes: 1 << 20, RequestTimeout: 50 * time.Millisecond}
	service := backend.NewPdfService(blockingRenderer{}, pdf.NewFitzExtractor(), false)
	fns := functions.NewWithService(cfg, service)

	body, err := json.Marshal(map[string]any{"pdfBase64": pdftest.Base64([]byte("%PDF"), false)})
	require.NoError(t, err)

	rec := serve(fns.Convert(), http.MethodPost, body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), context.DeadlineExceeded.Error())
}
