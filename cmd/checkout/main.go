package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/plural-checkout/internal/api"
	"github.com/DanielPopoola/plural-checkout/internal/application/services"
	"github.com/DanielPopoola/plural-checkout/internal/callback"
	"github.com/DanielPopoola/plural-checkout/internal/config"
	"github.com/DanielPopoola/plural-checkout/internal/infrastructure/gateway"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/plural-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/plural-checkout/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"env", cfg.Primary.Env,
		"port", cfg.Server.Port,
		"gateway_environment", cfg.Gateway.Environment,
		"gateway_url", cfg.Gateway.ResolvedBaseURL(),
		"log_level", cfg.Logger.Level,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupTracing(ctx, cfg.Tracing)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	gatewayMetrics := observability.NewGatewayMetrics(registry)
	httpMetrics := observability.NewHTTPMetrics(registry)

	gatewayClient := gateway.NewInstrumentedClient(
		gateway.NewGatewayClient(cfg.Gateway),
		gatewayMetrics,
		logger,
	)

	validator := services.NewValidator()
	orderService := services.NewOrderService(gatewayClient, validator, services.OrderSettings{
		CallbackBaseURL: cfg.CallbackBaseURL(),
		MerchantID:      cfg.Gateway.MerchantID,
	}, logger)
	paymentService := services.NewPaymentService(gatewayClient, validator, logger)
	tokenService := services.NewTokenService(gatewayClient, logger)
	verifyService := services.NewVerifyService(gatewayClient, logger)

	successPage := callback.NewRenderer(callback.Options{
		Strict:            cfg.Callback.Strict,
		VerifyWithGateway: cfg.Callback.VerifyWithGateway,
	}, verifyService, logger)
	callbackPage := callback.NewRenderer(callback.Options{
		VerifyWithGateway: cfg.Callback.VerifyWithGateway,
	}, verifyService, logger)

	h := handlers.NewHandlers(
		orderService,
		paymentService,
		tokenService,
		verifyService,
		successPage,
		callbackPage,
		logger,
	)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, logger)
	limiter.StartCleanup(ctx, time.Minute, 10*time.Minute)

	mux := http.NewServeMux()
	if err := api.RegisterDocsRoutes(mux); err != nil {
		logger.Error("failed to register docs routes", "error", err)
		os.Exit(1)
	}
	h.RegisterRoutes(mux, httpMetrics, limiter)
	mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	router := http.Handler(mux)

	handler := middleware.Recovery(logger)(router)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.WriteTimeout, logger, "/api/")(handler)
	handler = otelhttp.NewHandler(handler, "checkout")

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr, "callback_base_url", cfg.CallbackBaseURL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	logger.Info("server exited")
}
