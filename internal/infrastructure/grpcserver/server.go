package grpcserver

import (
	"fmt"
	"net"
	"strconv"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jxjxx71718/mediaGallery/pkg/logger"
)

// ServiceName is the health service name reported for the catalog API.
const ServiceName = "mediagallery.Catalog"

// Server exposes the standard gRPC health protocol so orchestrators can probe
// the process without going through HTTP.
type Server struct {
	cfg    Config
	grpc   *grpc.Server
	health *health.Server
}

func New(cfg Config) *Server {
	s := grpc.NewServer()
	h := health.NewServer()
	healthpb.RegisterHealthServer(s, h)
	reflection.Register(s)

	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Server{
		cfg:    cfg,
		grpc:   s,
		health: h,
	}
}

func (s *Server) Address() string {
	return net.JoinHostPort(s.cfg.Bind, strconv.Itoa(int(s.cfg.Port)))
}

// Start listens on the configured address and blocks until Stop is called.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.Address())
	if err != nil {
		return fmt.Errorf("grpc listen on %s: %w", s.Address(), err)
	}

	return s.Serve(lis)
}

func (s *Server) Serve(lis net.Listener) error {
	logger.Info("grpc health server listening", "addr", lis.Addr().String())

	return s.grpc.Serve(lis)
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	s.health.SetServingStatus("", status)
	s.health.SetServingStatus(ServiceName, status)
}

// Stop marks every service as not serving and drains in-flight calls.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
