// Package server wires the vault runtime and gRPC lifecycle.
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
	"github.com/incalabs/coinwrap/internal/platform/coins"
	"github.com/incalabs/coinwrap/internal/platform/config"
	"github.com/incalabs/coinwrap/internal/platform/discovery"
	grpcplatform "github.com/incalabs/coinwrap/internal/platform/grpc"
	"github.com/incalabs/coinwrap/internal/platform/hooksig"
	vaultservice "github.com/incalabs/coinwrap/internal/services/vault/api/grpc/vault"
	"github.com/incalabs/coinwrap/internal/services/vault/grant"
	vaultstorage "github.com/incalabs/coinwrap/internal/services/vault/storage"
	vaultsqlite "github.com/incalabs/coinwrap/internal/services/vault/storage/sqlite"
	"github.com/incalabs/coinwrap/internal/services/vault/tokenclient"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

type serverEnv struct {
	DBPath      string `env:"COINWRAP_VAULT_DB_PATH"`
	Owner       string `env:"COINWRAP_VAULT_OWNER"`
	NativeDenom string `env:"COINWRAP_VAULT_NATIVE_DENOM"`
	Account     string `env:"COINWRAP_VAULT_ACCOUNT"`
	TokenAddr   string `env:"COINWRAP_TOKEN_GRPC_ADDR"`

	TokenDialTimeout time.Duration `env:"COINWRAP_TOKEN_DIAL_TIMEOUT" envDefault:"30s"`
}

func loadServerEnv() serverEnv {
	cfg := serverEnv{}
	_ = config.ParseEnv(&cfg)
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = filepath.Join("data", "vault.db")
	}
	if strings.TrimSpace(cfg.Owner) == "" {
		cfg.Owner = "owner"
	}
	if strings.TrimSpace(cfg.NativeDenom) == "" {
		cfg.NativeDenom = "unative"
	}
	if strings.TrimSpace(cfg.Account) == "" {
		cfg.Account = "vault"
	}
	cfg.TokenAddr = discovery.OrDefaultGRPCAddr(cfg.TokenAddr, discovery.ServiceToken)
	if cfg.TokenDialTimeout <= 0 {
		cfg.TokenDialTimeout = 30 * time.Second
	}
	return cfg
}

// Server hosts the vault gRPC API and storage lifecycle.
type Server struct {
	listener   net.Listener
	grpcServer *grpc.Server
	health     *health.Server
	store      *vaultsqlite.Store
	tokenConn  *grpc.ClientConn
}

// New creates a configured vault server listening on the provided port.
func New(port int) (*Server, error) {
	return NewWithAddr(fmt.Sprintf(":%d", port))
}

// NewWithAddr creates a configured vault server for the provided address.
func NewWithAddr(addr string) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	srvEnv := loadServerEnv()
	store, err := openVaultStore(srvEnv.DBPath)
	if err != nil {
		_ = listener.Close()
		return nil, err
	}
	now := time.Now().UTC()
	state, err := store.InitState(context.Background(), vaultstorage.State{
		Owner:       srvEnv.Owner,
		NativeDenom: srvEnv.NativeDenom,
		EscrowTotal: coins.Zero(),
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("init vault state: %w", err)
	}
	// The stored row wins on restart; a denom change would corrupt the ledger.
	if state.NativeDenom != srvEnv.NativeDenom {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("stored native denom %q does not match configured %q", state.NativeDenom, srvEnv.NativeDenom)
	}

	grantCfg, err := grant.LoadConfigFromEnv(time.Now)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("load owner grant config: %w", err)
	}
	keyring, err := hooksig.KeyringFromEnv()
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("load hook keyring: %w", err)
	}

	// Minting and burning need the token ledger, so startup blocks until
	// the token service reports healthy.
	tokenConn, err := grpcplatform.DialWithHealth(
		context.Background(),
		nil,
		srvEnv.TokenAddr,
		srvEnv.TokenDialTimeout,
		log.Printf,
		grpcplatform.DefaultClientDialOptions()...,
	)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		return nil, fmt.Errorf("dial token service at %s: %w", srvEnv.TokenAddr, err)
	}
	tokens, err := tokenclient.New(tokenv1.NewTokenServiceClient(tokenConn), srvEnv.Account)
	if err != nil {
		_ = listener.Close()
		_ = store.Close()
		_ = tokenConn.Close()
		return nil, fmt.Errorf("configure token client: %w", err)
	}

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(grpcplatform.AuditUnaryInterceptor(log.Printf)),
	)
	apiService := vaultservice.NewService(store, tokens, keyring, grantCfg)
	healthServer := health.NewServer()
	vaultv1.RegisterVaultServiceServer(grpcServer, apiService)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus("vault.v1.VaultService", grpc_health_v1.HealthCheckResponse_SERVING)

	return &Server{
		listener:   listener,
		grpcServer: grpcServer,
		health:     healthServer,
		store:      store,
		tokenConn:  tokenConn,
	}, nil
}

// Addr returns the listener address for the server.
func (s *Server) Addr() string {
	if s == nil || s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Run creates and serves a vault server until context cancellation.
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

	log.Printf("vault server listening at %v", s.listener.Addr())
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

// Close releases vault server resources.
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
	if s.tokenConn != nil {
		_ = s.tokenConn.Close()
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			log.Printf("close vault store: %v", err)
		}
	}
}

func openVaultStore(path string) (*vaultsqlite.Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := vaultsqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open vault sqlite store: %w", err)
	}
	return store, nil
}
