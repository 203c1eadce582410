package api

import (
	"errors"
	"fmt"
	"net"

	grpcmiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthService is the service name that reports game readiness. Checks
// against the empty service name only say the grpc server is up.
const HealthService = "snake"

// HealthServer is a grpc health checking server for orchestrators. It reports
// SERVING while the game runner is up.
type HealthServer struct {
	srv    *grpc.Server
	health *health.Server

	started chan struct{}
	port    int
}

var errNotListening = errors.New("api: health server is not listening")

// NewHealthServer returns a health server reporting HealthService as
// NOT_SERVING until SetServing is called.
func NewHealthServer() *HealthServer {
	srv := grpc.NewServer(
		grpc.UnaryInterceptor(grpcmiddleware.ChainUnaryServer(promgrpc.UnaryServerInterceptor)),
		grpc.StreamInterceptor(grpcmiddleware.ChainStreamServer(promgrpc.StreamServerInterceptor)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(srv, hs)
	promgrpc.Register(srv)

	h := &HealthServer{
		srv:     srv,
		health:  hs,
		started: make(chan struct{}),
	}
	h.SetServing(false)
	return h
}

// SetServing flips the status reported for HealthService.
func (h *HealthServer) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	h.health.SetServingStatus(HealthService, status)
}

// Serve will listen on listen and block serving health checks.
func (h *HealthServer) Serve(listen string) error {
	lis, err := net.Listen("tcp", listen)
	if err != nil {
		close(h.started)
		return err
	}
	h.port = lis.Addr().(*net.TCPAddr).Port
	close(h.started)
	return h.srv.Serve(lis)
}

// DialAddress will return a localhost address to reach the server once Serve
// is listening. This is useful if the server will select it's own port. It
// fails if Serve could not listen.
func (h *HealthServer) DialAddress() (string, error) {
	<-h.started
	if h.port == 0 {
		return "", errNotListening
	}
	return fmt.Sprintf("127.0.0.1:%d", h.port), nil
}

// Stop stops the server, letting in flight checks finish.
func (h *HealthServer) Stop() { h.srv.GracefulStop() }
