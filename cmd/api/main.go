package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"pdf-api/cmd"
	"pdf-api/internal/api"
	"syscall"
	"time"
)

func main() {
	log.Println("Starting API Server...")

	cfg := cmd.LoadConfig()
	cmd.ConfigureLogging(cfg)

	service, err := api.NewServiceFromConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to create pdf service: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewRouter(cfg, service),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	slog.Info("API server listening", "port", cfg.Port, "text_engine", cfg.TextEngine, "max_body_bytes", cfg.MaxBodyBytes)
	log.Printf("Health check: http://localhost:%d/health", cfg.Port)
	log.Printf("Conversão PDF->Imagem: POST http://localhost:%d/api/pdf/convert", cfg.Port)
	log.Printf("Extração de texto: POST http://localhost:%d/api/pdf/extract-text", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %d: %v\n", cfg.Port, err)
	}

	log.Println("Server stopped.")
}
