package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/go-deploy-gate/internal/config"
	myGRPC "github.com/MKhiriev/go-deploy-gate/internal/handler/grpc"
	"github.com/MKhiriev/go-deploy-gate/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	// watchCancel stops the db status refresher on shutdown.
	watchCancel context.CancelFunc

	logger *logger.Logger
}

// newGRPCServer binds the gRPC listener, mounts the health service, and
// prepares the server. Like the HTTP side, bind failures fail construction.
func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("binding grpc listener on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	watchCtx, cancel := context.WithCancel(context.Background())
	g.watchCancel = cancel
	go g.handler.WatchDatabase(watchCtx)

	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v\n", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	if g.watchCancel != nil {
		g.watchCancel()
	}
	g.server.GracefulStop()
}
