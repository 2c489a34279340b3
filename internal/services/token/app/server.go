// Package server wires the token runtime and gRPC lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	tokenv1 "github.com/incalabs/coinwrap/api/gen/go/token/v1"
	vaultv1 "github.com/incalabs/coinwrap/api/gen/go/vault/v1"
	"github.com/incalabs/coinwrap/internal/platform/config"
	grpcplatform "github.com/incalabs/coinwrap/internal/platform/grpc"
	"github.com/incalabs/coinwrap/internal/platform/hooksig"
	tokenservice "github.com/incalabs/coinwrap/internal/services/token/api/grpc/token"
	"github.com/incalabs/coinwrap/internal/services/token/hookclient"
	tokenstorage "github.com/incalabs/coinwrap/internal/services/token/storage"
	tokensqlite "github.com/incalabs/coinwrap/internal/services/token/storage/sqlite"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath          string `env:"COINWRAP_TOKEN_DB_PATH"`
	Name            string `env:"COINWRAP_TOKEN_NAME"`
	Symbol          string `env:"COINWRAP_TOKEN_SYMBOL"`
	Decimals        uint32 `env:"COINWRAP_TOKEN_DECIMALS"`
	Minter          string `env:"COINWRAP_TOKEN_MINTER"`
	ContractAddress string `env:"COINWRAP_TOKEN_CONTRACT_ADDRESS"`
	VaultAddr       string `env:"COINWRAP_VAULT_GRPC_ADDR"`
}

func loadServerEnv() serverEnv {
	cfg := serverEnv{Decimals: 6}
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "token.db")
	}
	if strings.TrimSpace(cfg.Name) == "" {
		cfg.Name = "Wrapped Coin"
	}
	if strings.TrimSpace(cfg.Symbol) == "" {
		cfg.Symbol = "WCOIN"
	}
	if strings.TrimSpace(cfg.Minter) == "" {
		cfg.Minter = "vault"
	}
	if strings.TrimSpace(cfg.ContractAddress) == "" {
		cfg.ContractAddress = "token"
	}
	return cfg
}

// Server hosts the token gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *tokensqlite.Store
	vaultConn  *grpc.ClientConn
}

// New creates a configured token server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured token server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	srvEnv := loadServerEnv()
	store, err := openTokenStore(srvEnv.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	now := time.Now().UTC()
	if _, err := store.InitMeta(context.Background(), tokenstorage.Meta{
		Name:      srvEnv.Name,
		Symbol:    srvEnv.Symbol,
		Decimals:  srvEnv.Decimals,
		Minter:    srvEnv.Minter,
		CreatedAt: now,
		UpdatedAt: now,
	}); err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("init token metadata: %w", err)
	}

	var notifier tokenservice.HookNotifier
	var vaultConn *grpc.ClientConn
	if vaultAddr := strings.TrimSpace(srvEnv.VaultAddr); vaultAddr != "" {
		keyring, err := hooksig.KeyringFromEnv()
		if err != nil {
			_ = listener.Close()
			_ = store.Close()
			return nil, fmt.Errorf("load hook keyring: %w", err)
		}
		vaultConn, err = grpc.NewClient(
			vaultAddr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		)
		if err != nil {
			_ = listener.Close()
			_ = store.Close()
			return nil, fmt.Errorf("dial vault at %s: %w", vaultAddr, err)
		}
		notifier, err = hookclient.New(vaultv1.NewVaultServiceClient(vaultConn), keyring, srvEnv.ContractAddress)
		if err != nil {
			_ = listener.Close()
			_ = store.Close()
			_ = vaultConn.Close()
			return nil, fmt.Errorf("configure hook client: %w", err)
		}
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcplatform.AuditUnaryInterceptor(log.Printf)),
	)
	apiService := tokenservice.NewService(store, notifier)
	healthServer := health.NewServer()
	tokenv1.RegisterTokenServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("token.v1.TokenService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		vaultConn:  vaultConn,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a token server until context cancellation.
func Run(ctx context.Context, port int) error {
	server, err := New(port)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

// Serve starts the gRPC server until context cancellation.
func (s *Server) Serve(ctx context.Context) error {
	if s == nil {
		return errors.New("server is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer s.Close()

	log.Printf("token server listening at %v", s.listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.grpcServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		if s.health != nil {
			s.health.Shutdown()
		}
		s.grpcServer.GracefulStop()
		err := <-serveErr
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	case err := <-serveErr:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return fmt.Errorf("serve gRPC: %w", err)
	}
}

// Close releases token server resources.
func (s *Server) Close() {
	if s == nil {
		return
	}
	if s.health != nil {
		s.health.Shutdown()
	}
	if s.grpcServer != nil {
		s.grpcServer.Stop()
	}
	if s.listener != nil {
		_ = s.listener.Close()
	}
	if s.vaultConn != nil {
		_ = s.vaultConn.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close token store: %v", err)
		}
	}
}

func openTokenStore(path string) (*tokensqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := tokensqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open token sqlite store: %w", err)
	}
	return store, nil
}
