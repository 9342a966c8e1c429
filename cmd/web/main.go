package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bookbrowse/internal/httpx"
	"bookbrowse/internal/platform/openlibrary"
	"bookbrowse/internal/query"
	"bookbrowse/internal/search"
	"bookbrowse/internal/web"
	"bookbrowse/internal/work"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	upstreamURL := getEnv("OPENLIBRARY_URL", "https://openlibrary.org")
	userAgent := getEnv("USER_AGENT", "bookbrowse/1.0 (github.com/bookbrowse)")
	upstreamRPS := getEnvInt("OPENLIBRARY_RPS", 5)
	cacheTTL := getEnvDuration("CACHE_TTL", 5*time.Minute)
	limitRPS := getEnvInt("RATE_LIMIT_RPS", 10)
	limitBurst := getEnvInt("RATE_LIMIT_BURST", 20)

	client := openlibrary.NewClient(upstreamURL, userAgent, upstreamRPS)

	searchService := search.NewService(client, query.New[search.Result](cacheTTL))
	workService := work.NewService(client, query.New[work.Detail](cacheTTL), query.New[work.Author](cacheTTL))

	searchHandler := search.NewHTTPHandler(searchService)
	workHandler := work.NewHTTPHandler(workService)
	pageHandler := web.NewHandler(searchService, workService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := client.Ping(ctx); err != nil {
			http.Error(w, "upstream not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /v1/search", searchHandler.Search)
	router.HandleFunc("GET /v1/works/{id}", workHandler.GetDetail)

	router.HandleFunc("GET /{$}", pageHandler.Index)
	router.HandleFunc("GET /works/{id}", pageHandler.WorkDetail)

	rateLimit := httpx.NewRateLimitMiddleware(float64(limitRPS), limitBurst)

	var handler http.Handler = router
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Starting server on %s", serverAddress)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-shutdownCtx.Done()
	log.Println("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, def)
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, v, def)
	}
	return def
}
