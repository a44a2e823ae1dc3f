package grpchealth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"marketplace/pkg/logger"
)

const (
	KeepaliveTime    = 5 * time.Minute
	KeepaliveTimeout = 3 * time.Second
)

// Server exposes the standard grpc.health.v1 service so orchestrators can
// probe the process the same way for every binary.
type Server struct {
	log    logger.Logger
	server *grpc.Server
	health *health.Server
}

func New(log logger.Logger, services ...string) *Server {
	server := grpc.NewServer(
		grpc.KeepaliveParams(keepalive.ServerParameters{
			Time:    KeepaliveTime,
			Timeout: KeepaliveTimeout,
		}),
	)

	hs := health.NewServer()
	healthpb.RegisterHealthServer(server, hs)

	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	for _, svc := range services {
		hs.SetServingStatus(svc, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		log:    log.With(logger.NewField("component", "grpc-health")),
		server: server,
		health: hs,
	}
}

func (s *Server) Serve(lis net.Listener) error {
	s.log.With(logger.NewField("addr", lis.Addr().String())).Info("gRPC health server starting")

	err := s.server.Serve(lis)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("grpc health server: %w", err)
	}
	return nil
}

func (s *Server) ListenAndServe(port string) error {
	lis, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("listen grpc health port %s: %w", port, err)
	}
	return s.Serve(lis)
}

// Drain flips every service to NOT_SERVING; probes fail while in-flight work
// finishes.
func (s *Server) Drain() {
	s.health.Shutdown()
}

func (s *Server) Shutdown(ctx context.Context) {
	s.Drain()

	stopped := make(chan struct{})
	go func() {
		s.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		s.server.Stop()
	}
}
