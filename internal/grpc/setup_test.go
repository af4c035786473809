package grpc

import (
	"context"
	"net"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
)

// startProbe serves a fresh probe server on an ephemeral port and returns a
// connected client alongside the health server handle.
func startProbe(t *testing.T) (*grpc.ClientConn, *health.Server) {
	t.Helper()

	srv, healthServer := NewProbeServer()

	lis, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to listen: %v", err)
	}

	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	return conn, healthServer
}

func checkStatus(t *testing.T, client grpc_health_v1.HealthClient, service string) grpc_health_v1.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := client.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
	if err != nil {
		t.Fatalf("Health check for %q failed: %v", service, err)
	}
	return resp.Status
}

func TestNewProbeServer_ReturnsNonNil(t *testing.T) {
	srv, healthServer := NewProbeServer()
	if srv == nil {
		t.Fatal("Expected non-nil gRPC server")
	}
	if healthServer == nil {
		t.Fatal("Expected non-nil health server")
	}
}

func TestNewProbeServer_HealthCheck(t *testing.T) {
	conn, healthServer := startProbe(t)
	healthClient := grpc_health_v1.NewHealthClient(conn)

	// Overall server health and the engine serve immediately.
	if got := checkStatus(t, healthClient, ""); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING status, got %v", got)
	}
	if got := checkStatus(t, healthClient, ServiceEngine); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING status for engine, got %v", got)
	}

	// The store starts NOT_SERVING until the host flips it.
	if got := checkStatus(t, healthClient, ServiceStore); got != grpc_health_v1.HealthCheckResponse_NOT_SERVING {
		t.Errorf("Expected NOT_SERVING status for store, got %v", got)
	}

	healthServer.SetServingStatus(ServiceStore, grpc_health_v1.HealthCheckResponse_SERVING)
	if got := checkStatus(t, healthClient, ServiceStore); got != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING status for store after flip, got %v", got)
	}
}

func TestNewProbeServer_ReflectionEnabled(t *testing.T) {
	conn, _ := startProbe(t)

	// Verify reflection is available by listing services
	reflectionClient := grpc_reflection_v1.NewServerReflectionClient(conn)
	stream, err := reflectionClient.ServerReflectionInfo(context.Background())
	if err != nil {
		t.Fatalf("Failed to create reflection stream: %v", err)
	}

	err = stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_ListServices{
			ListServices: "",
		},
	})
	if err != nil {
		t.Fatalf("Failed to send reflection request: %v", err)
	}

	resp, err := stream.Recv()
	if err != nil {
		t.Fatalf("Failed to receive reflection response: %v", err)
	}

	listResp := resp.GetListServicesResponse()
	if listResp == nil {
		t.Fatal("Expected list services response")
	}

	// Should contain the health service
	found := false
	for _, svc := range listResp.Service {
		if svc.Name == "grpc.health.v1.Health" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Expected health service to be registered")
	}
}

func TestNewProbeServer_CalledMultipleTimes(t *testing.T) {
	// Verify sync.Once prevents double-registration panics
	srv1, _ := NewProbeServer()
	srv2, _ := NewProbeServer()

	if srv1 == nil || srv2 == nil {
		t.Fatal("Expected non-nil servers from multiple calls")
	}
}
