package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"msgtags/internal/common"
	"msgtags/internal/config"
	"msgtags/internal/di"
	"msgtags/internal/logging"
)

const serviceName = "msgtags.chat"

func main() {
	cfg := config.LoadConfig()

	log, closer := logging.New(cfg.Logging)
	defer closer.Close()
	slog.SetDefault(log)

	log.Info("starting chat service", "env", cfg.Server.Environment, "store", cfg.Store.Driver)

	app, cleanup, err := di.InitializeChatService(cfg, log)
	if err != nil {
		log.Error("failed to initialize chat service", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	// gRPC carries health and reflection only
	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(common.UnaryLoggingInterceptor(log)),
		grpc.ChainStreamInterceptor(common.StreamLoggingInterceptor(log)),
	)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", net.JoinHostPort(cfg.Server.Host, cfg.Server.GRPCPort))
	if err != nil {
		log.Error("failed to listen", "port", cfg.Server.GRPCPort, "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:           net.JoinHostPort(cfg.Server.Host, cfg.Server.HTTPPort),
		Handler:        setupRouter(app),
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("gRPC server listening", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()
	go func() {
		log.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()
	healthServer.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Info("shutting down", "signal", sig.String())
	case err := <-errCh:
		log.Error("server failed", "error", err)
	}

	healthServer.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", "error", err)
	}
	grpcServer.GracefulStop()

	log.Info("chat service stopped")
}

func setupRouter(app *di.Application) *mux.Router {
	router := mux.NewRouter()

	router.Use(common.CORSMiddleware)
	router.Use(common.LoggingMiddleware(app.Logger, app.Metrics))

	router.Handle("/metrics", app.Metrics.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", healthCheckHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(common.RateLimitMiddleware(float64(app.Config.Server.RateLimitRPS), app.Config.Server.RateBurst))
	app.Handler.RegisterRoutes(api)

	return router
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "healthy", "service": serviceName})
}
