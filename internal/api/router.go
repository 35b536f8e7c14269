package api

import (
	"context"
	"net/http"
	"pdf-api/internal/config"
	"pdf-api/internal/pdf"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var CorsOptions = cors.Options{
	AllowedOrigins: []string{"*"},
	AllowedMethods: []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
	AllowedHeaders: []string{
		"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version", "Content-Length",
		"Content-MD5", "Content-Type", "Date", "X-Api-Version",
	},
	AllowCredentials: true,
	MaxAge:           300, // Cache preflight response for 5 minutes
}

// NewServiceFromConfig builds the service with the go-fitz renderer and the configured text engine.
func NewServiceFromConfig(cfg config.Config) (*PdfService, error) {
	extractor, err := pdf.NewExtractor(cfg.TextEngine)
	if err != nil {
		return nil, err
	}
	service := NewPdfService(pdf.NewFitzRenderer(), extractor, cfg.ValidatePDF)
	if cfg.MaxScale > 0 {
		service.maxScale = cfg.MaxScale
	}
	return service, nil
}

func NewRouter(cfg config.Config, service *PdfService) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(CorsOptions))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestTimeout(cfg.RequestTimeout))
	r.Use(middleware.RequestSize(cfg.MaxBodyBytes))

	service.AddRoutes(r)

	return r
}

// RequestTimeout bounds the request context. Handlers report the expired context in their own
// error envelope, so nothing is written here.
func RequestTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
