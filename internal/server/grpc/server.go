// Package grpc exposes the account and vehicle services over gRPC. It owns
// the translation of domain errors into status codes.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/fuelcost/internal/api/fuelcostv1"
	"github.com/dmitrijs2005/fuelcost/internal/logging"
	"github.com/dmitrijs2005/fuelcost/internal/server/models"
	"github.com/dmitrijs2005/fuelcost/internal/server/services"
	"google.golang.org/grpc"
)

// AccountService is the account use-case layer the handlers delegate to.
type AccountService interface {
	Create(ctx context.Context) (*models.Account, error)
	Get(ctx context.Context, name string) (*models.Account, error)
	Update(ctx context.Context, name, tag string) (*models.Account, error)
	Delete(ctx context.Context, name, tag string) error
	List(ctx context.Context, pageSize int32, pageToken string) (*services.AccountPage, error)
}

// VehicleService is the vehicle use-case layer the handlers delegate to.
type VehicleService interface {
	Create(ctx context.Context, parent, displayName string) (*models.Vehicle, error)
	Get(ctx context.Context, name string) (*models.Vehicle, error)
	Update(ctx context.Context, name, tag, displayName string) (*models.Vehicle, error)
	Delete(ctx context.Context, name, tag string) error
	List(ctx context.Context, parent string, pageSize int32, pageToken string) (*services.VehiclePage, error)
}

type GRPCServer struct {
	fuelcostv1.UnimplementedAccountServiceServer
	fuelcostv1.UnimplementedVehicleServiceServer
	address         string
	accounts        AccountService
	vehicles        VehicleService
	logger          logging.Logger
	jwtSecret       []byte
	shutdownTimeout time.Duration
}

// NewGRPCServer wires the handlers. An empty secretKey disables bearer
// token checks.
func NewGRPCServer(a string, l logging.Logger, as AccountService, vs VehicleService, secretKey string, shutdownTimeout time.Duration) *GRPCServer {
	return &GRPCServer{
		address:         a,
		logger:          l.With("module", "grpc_server"),
		accounts:        as,
		vehicles:        vs,
		jwtSecret:       []byte(secretKey),
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		fuelcostv1.ServerCodecOption(),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor),
	)
	fuelcostv1.RegisterAccountServiceServer(srv, s)
	fuelcostv1.RegisterVehicleServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
// Calls still running after the shutdown timeout are cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info(ctx, "Stopping gRPC server...")
	s.stop(ctx, srv)
	return <-errCh
}

func (s *GRPCServer) stop(ctx context.Context, srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	timer := time.NewTimer(s.shutdownTimeout)
	defer timer.Stop()

	select {
	case <-stopped:
	case <-timer.C:
		s.logger.Warn(ctx, "Graceful stop timed out, forcing", "timeout", s.shutdownTimeout.String())
		srv.Stop()
		<-stopped
	}
}
