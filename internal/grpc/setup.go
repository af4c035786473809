// Package grpc hosts the health probe listener. The rename API itself is
// served over HTTP; this listener exists so infra health checks and service
// meshes can probe subsystem readiness through the standard grpc.health.v1
// protocol.
package grpc

import (
	"sync"

	grpcprom "github.com/grpc-ecosystem/go-grpc-middleware/providers/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Subsystem names reported through the health service.
const (
	// ServiceEngine covers the pure rename computations; it serves as soon
	// as the process is up.
	ServiceEngine = "renamed.engine"

	// ServiceStore covers the settings store; the caller flips it to
	// SERVING once the backend is reachable.
	ServiceStore = "renamed.store"
)

var (
	grpcServerMetrics         *grpcprom.ServerMetrics
	registerServerMetricsOnce sync.Once
)

// NewProbeServer creates a fully configured probe gRPC server with Prometheus
// metrics, health checking, and reflection. The returned health server starts
// with the engine SERVING and the store NOT_SERVING; the caller owns the
// store status.
func NewProbeServer() (*grpc.Server, *health.Server) {
	// Set up Prometheus gRPC server metrics once per process
	registerServerMetricsOnce.Do(func() {
		grpcServerMetrics = grpcprom.NewServerMetrics(
			grpcprom.WithServerHandlingTimeHistogram(),
		)
		prometheus.MustRegister(grpcServerMetrics)
	})

	srvMetrics := grpcServerMetrics

	// Create a gRPC server with Prometheus interceptors
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(srvMetrics.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(srvMetrics.StreamServerInterceptor()),
	)

	// Register health check service
	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceEngine, grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(ServiceStore, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	// Register reflection service for tools like grpcurl
	reflection.Register(grpcServer)

	// Initialize gRPC metrics with all registered service methods
	srvMetrics.InitializeMetrics(grpcServer)

	return grpcServer, healthServer
}
