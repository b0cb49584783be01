package main

import (
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jaskrrish/go-qre/internal/config"
	"github.com/jaskrrish/go-qre/internal/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	mux := http.NewServeMux()

	resourceHandler := handlers.NewResourceHandler(cfg.RotationBits)
	templateHandler := handlers.NewTemplateHandler()

	mux.HandleFunc("/", handlers.HomeHandler)
	mux.HandleFunc("/health", handlers.HealthHandler)

	mux.HandleFunc("/api/v1/resources/success-prob", resourceHandler.SuccessProbHandler)
	mux.HandleFunc("/api/v1/resources/norm", resourceHandler.NormHandler)
	mux.HandleFunc("/api/v1/templates/flipsign", templateHandler.FlipSignHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      loggingMiddleware(logger, mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.Environment),
		zap.Int("default_br", cfg.RotationBits),
	)
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(logger *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Info("request",
			zap.String("method", r.Method),
			zap.String("uri", r.RequestURI),
			zap.String("remote", r.RemoteAddr),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)),
		)
	})
}
