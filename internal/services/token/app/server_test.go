package server

import (
	"context"
	"testing"
	"time"

	tokenv1 "github.com/incalabs/coinwrap/api/gen/go/token/v1"
	grpcplatform "github.com/incalabs/coinwrap/internal/platform/grpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

func TestServer_StartsAndServesHealth(t *testing.T) {
	dbPath := t.TempDir() + "/token.db"
	t.Setenv("COINWRAP_TOKEN_DB_PATH", dbPath)

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial token server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()
	if err := grpcplatform.WaitForHealth(waitCtx, conn, "", t.Logf); err != nil {
		t.Fatalf("wait for health: %v", err)
	}

	healthClient := grpc_health_v1.NewHealthClient(conn)
	for _, service := range []string{"", "token.v1.TokenService"} {
		resp, err := healthClient.Check(context.Background(), &grpc_health_v1.HealthCheckRequest{Service: service})
		if err != nil {
			t.Fatalf("health check %q: %v", service, err)
		}
		if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
			t.Fatalf("health status for %q = %v, want SERVING", service, resp.GetStatus())
		}
	}
}

func TestServer_ServesTokenRPCsOverWire(t *testing.T) {
	dbPath := t.TempDir() + "/token.db"
	t.Setenv("COINWRAP_TOKEN_DB_PATH", dbPath)
	t.Setenv("COINWRAP_TOKEN_NAME", "Wrapped Atom")
	t.Setenv("COINWRAP_TOKEN_SYMBOL", "WATOM")
	t.Setenv("COINWRAP_TOKEN_MINTER", "vault-1")

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	dialCtx, dialCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dialCancel()
	conn, err := grpcplatform.DialWithHealth(dialCtx, nil, srv.Addr(), 5*time.Second, t.Logf, grpcplatform.DefaultClientDialOptions()...)
	if err != nil {
		t.Fatalf("dial token server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	client := tokenv1.NewTokenServiceClient(conn)

	info, err := client.TokenInfo(context.Background(), &tokenv1.TokenInfoRequest{})
	if err != nil {
		t.Fatalf("token info: %v", err)
	}
	if info.Name != "Wrapped Atom" || info.Symbol != "WATOM" {
		t.Fatalf("token info = %q/%q, want Wrapped Atom/WATOM", info.Name, info.Symbol)
	}
	if info.TotalSupply != "0" {
		t.Fatalf("total supply = %q, want 0", info.TotalSupply)
	}

	minted, err := client.Mint(context.Background(), &tokenv1.MintRequest{
		Minter:    "vault-1",
		Recipient: "alice",
		Amount:    "250",
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if minted.Balance != "250" || minted.TotalSupply != "250" {
		t.Fatalf("mint result = %q/%q, want 250/250", minted.Balance, minted.TotalSupply)
	}

	balance, err := client.Balance(context.Background(), &tokenv1.BalanceRequest{Account: "alice"})
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if balance.Balance != "250" {
		t.Fatalf("balance = %q, want 250", balance.Balance)
	}

	accounts, err := client.ListAccounts(context.Background(), &tokenv1.ListAccountsRequest{PageSize: 10})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accounts.Accounts) != 1 {
		t.Fatalf("accounts = %d, want 1", len(accounts.Accounts))
	}
	if accounts.Accounts[0].Account != "alice" || accounts.Accounts[0].Balance != "250" {
		t.Fatalf("account = %+v, want alice with 250", accounts.Accounts[0])
	}
}

func TestServer_InitializesTokenMetadataFromEnv(t *testing.T) {
	dbPath := t.TempDir() + "/token.db"
	t.Setenv("COINWRAP_TOKEN_DB_PATH", dbPath)
	t.Setenv("COINWRAP_TOKEN_NAME", "Wrapped Atom")
	t.Setenv("COINWRAP_TOKEN_SYMBOL", "WATOM")
	t.Setenv("COINWRAP_TOKEN_MINTER", "vault-1")

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	defer srv.Close()

	meta, err := srv.store.GetMeta(context.Background())
	if err != nil {
		t.Fatalf("get meta: %v", err)
	}
	if meta.Symbol != "WATOM" {
		t.Fatalf("symbol = %q, want WATOM", meta.Symbol)
	}
	if meta.Minter != "vault-1" {
		t.Fatalf("minter = %q, want vault-1", meta.Minter)
	}
}

func TestServer_RequiresKeyringWhenVaultConfigured(t *testing.T) {
	dbPath := t.TempDir() + "/token.db"
	t.Setenv("COINWRAP_TOKEN_DB_PATH", dbPath)
	t.Setenv("COINWRAP_VAULT_GRPC_ADDR", "127.0.0.1:19999")
	t.Setenv("COINWRAP_HOOK_HMAC_KEY", "")
	t.Setenv("COINWRAP_HOOK_HMAC_KEYS", "")

	if _, err := NewWithAddr("127.0.0.1:0"); err == nil {
		t.Fatal("expected error without hook keyring")
	}
}
