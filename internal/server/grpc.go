package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	myGRPC "github.com/MKhiriev/simbaid-sync/internal/handler/grpc"
	"github.com/MKhiriev/simbaid-sync/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) *grpcServer {
	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		server:  s,
		address: address,
		logger:  logger,
	}
}

func (g *grpcServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	return g.serve(ctx, ln)
}

func (g *grpcServer) serve(ctx context.Context, ln net.Listener) error {
	g.logger.Info().Str("address", ln.Addr().String()).Msg("Launching GRPC server")

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return g.handler.Run(gctx, 0)
	})
	group.Go(func() error {
		if err := g.server.Serve(ln); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("gRPC server Serve: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-gctx.Done()
		g.Shutdown()
		return nil
	})

	return group.Wait()
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
