package server

import (
	"net"

	"github.com/MKhiriev/ucip-keeper/internal/config"
	myGRPC "github.com/MKhiriev/ucip-keeper/internal/handler/grpc"
	"github.com/MKhiriev/ucip-keeper/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer(grpc.UnaryInterceptor(handler.UnaryInterceptor()))
	myGRPC.RegisterContextServiceServer(s, handler)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  s,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server listen failed")
		return
	}
	g.serve(ln)
}

func (g *grpcServer) serve(ln net.Listener) {
	g.logger.Info().Str("address", ln.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(ln); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve failed")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
