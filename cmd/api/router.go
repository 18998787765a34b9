package main

import (
	"context"
	"net/http"

	"bookshelf/internal/app"
	"bookshelf/internal/catalog"
	"bookshelf/internal/httpx"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const maxRequestBytes = 1 << 20

func newRouter(ctx context.Context, cfg app.Config, svc *catalog.Service) http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("GET /metrics", promhttp.Handler())

	catalog.NewHTTPHandler(svc).Register(router, httpx.AdminOnly(cfg.JWTSecret))

	rateLimiter := httpx.NewRateLimitMiddleware(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)

	return httpx.Chain(router,
		httpx.RecoveryMiddleware,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
		rateLimiter.Middleware,
	)
}
