package hookclient

import (
	"context"
	"testing"

	vaultv1 "github.com/incalabs/coinwrap/api/gen/go/vault/v1"
	"github.com/incalabs/coinwrap/internal/platform/hooksig"
	"google.golang.org/grpc"
)

type fakeVaultClient struct {
	vaultv1.VaultServiceClient
	received *vaultv1.ReceiveRequest
	err      error
}

func (f *fakeVaultClient) Receive(_ context.Context, in *vaultv1.ReceiveRequest, _ ...grpc.CallOption) (*vaultv1.ReceiveResponse, error) {
	f.received = in
	if f.err != nil {
		return nil, f.err
	}
	return &vaultv1.ReceiveResponse{}, nil
}

func testKeyring(t *testing.T) *hooksig.Keyring {
	t.Helper()
	keyring, err := hooksig.NewKeyring(map[string][]byte{"v1": []byte("0123456789abcdef0123456789abcdef")}, "v1")
	if err != nil {
		t.Fatalf("new keyring: %v", err)
	}
	return keyring
}

func TestNotifyReceiveSignsPayload(t *testing.T) {
	vault := &fakeVaultClient{}
	keyring := testKeyring(t)
	client, err := New(vault, keyring, "token-1")
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	if err := client.NotifyReceive(context.Background(), "alice", "400"); err != nil {
		t.Fatalf("notify receive: %v", err)
	}
	if vault.received == nil {
		t.Fatal("expected receive request")
	}
	if vault.received.TokenContract != "token-1" {
		t.Fatalf("token contract = %q, want token-1", vault.received.TokenContract)
	}
	if vault.received.Sender != "alice" || vault.received.Amount != "400" {
		t.Fatalf("sender %q amount %q, want alice 400", vault.received.Sender, vault.received.Amount)
	}
	if vault.received.KeyId != "v1" {
		t.Fatalf("key id = %q, want v1", vault.received.KeyId)
	}

	payload := hooksig.Payload("alice", "400")
	if err := keyring.Verify("token-1", payload, vault.received.Signature, vault.received.KeyId); err != nil {
		t.Fatalf("verify signature: %v", err)
	}
}

func TestNewRequiresConfiguration(t *testing.T) {
	keyring := testKeyring(t)
	if _, err := New(nil, keyring, "token-1"); err == nil {
		t.Fatal("expected error for nil vault client")
	}
	if _, err := New(&fakeVaultClient{}, nil, "token-1"); err == nil {
		t.Fatal("expected error for nil keyring")
	}
	if _, err := New(&fakeVaultClient{}, keyring, "  "); err == nil {
		t.Fatal("expected error for empty token contract")
	}
}
