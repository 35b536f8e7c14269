// Package functions exposes each endpoint as a standalone http.Handler, for function runtimes that
// invoke one handler per path instead of running the router.
package functions

import (
	"net/http"
	"pdf-api/internal/api"
	"pdf-api/internal/config"

	"github.com/go-chi/cors"
)

type Functions struct {
	service      *api.PdfService
	maxBodyBytes int64
	timeout      func(http.Handler) http.Handler
}

func New(cfg config.Config) (*Functions, error) {
	service, err := api.NewServiceFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return NewWithService(cfg, service), nil
}

func NewWithService(cfg config.Config, service *api.PdfService) *Functions {
	return &Functions{service: service, maxBodyBytes: cfg.MaxBodyBytes, timeout: api.RequestTimeout(cfg.RequestTimeout)}
}

func (f *Functions) Health() http.Handler {
	return api.RestHandler(api.Health(true))
}

func (f *Functions) Index() http.Handler {
	return api.RestHandler(api.Index("/api/health"))
}

func (f *Functions) Convert() http.Handler {
	return f.post(f.service.Convert)
}

func (f *Functions) ExtractText() http.Handler {
	return f.post(f.service.ExtractText)
}

func (f *Functions) post(handler func(r *http.Request) (any, error)) http.Handler {
	bounded := f.timeout(api.RestHandler(handler))
	notAllowed := api.MethodNotAllowed(http.MethodPost)

	return cors.Handler(api.CorsOptions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodOptions:
			api.Preflight(w, r)
			return
		case http.MethodPost:
		default:
			notAllowed(w, r)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, f.maxBodyBytes)
		bounded.ServeHTTP(w, r)
	}))
}
