package tokenclient

import (
	"context"
	"testing"

	tokenv1 "github.com/incalabs/coinwrap/api/gen/go/token/v1"
	"google.golang.org/grpc"
)

type fakeTokenClient struct {
	tokenv1.TokenServiceClient

	mintReq         *tokenv1.MintRequest
	burnReq         *tokenv1.BurnRequest
	transferReq     *tokenv1.TransferRequest
	transferFromReq *tokenv1.TransferFromRequest
	allowanceReq    *tokenv1.AllowanceRequest
	allowance       string
}

func (f *fakeTokenClient) Mint(ctx context.Context, in *tokenv1.MintRequest, opts ...grpc.CallOption) (*tokenv1.MintResponse, error) {
	f.mintReq = in
	return &tokenv1.MintResponse{}, nil
}

func (f *fakeTokenClient) Burn(ctx context.Context, in *tokenv1.BurnRequest, opts ...grpc.CallOption) (*tokenv1.BurnResponse, error) {
	f.burnReq = in
	return &tokenv1.BurnResponse{}, nil
}

func (f *fakeTokenClient) Transfer(ctx context.Context, in *tokenv1.TransferRequest, opts ...grpc.CallOption) (*tokenv1.TransferResponse, error) {
	f.transferReq = in
	return &tokenv1.TransferResponse{}, nil
}

func (f *fakeTokenClient) TransferFrom(ctx context.Context, in *tokenv1.TransferFromRequest, opts ...grpc.CallOption) (*tokenv1.TransferFromResponse, error) {
	f.transferFromReq = in
	return &tokenv1.TransferFromResponse{}, nil
}

func (f *fakeTokenClient) Allowance(ctx context.Context, in *tokenv1.AllowanceRequest, opts ...grpc.CallOption) (*tokenv1.AllowanceResponse, error) {
	f.allowanceReq = in
	return &tokenv1.AllowanceResponse{Allowance: f.allowance}, nil
}

func newTestClient(t *testing.T) (*Client, *fakeTokenClient) {
	t.Helper()
	fake := &fakeTokenClient{}
	client, err := New(fake, "vault")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, fake
}

func TestNewValidatesInputs(t *testing.T) {
	if _, err := New(nil, "vault"); err == nil {
		t.Fatal("New(nil, ...) = nil error, want error")
	}
	if _, err := New(&fakeTokenClient{}, "  "); err == nil {
		t.Fatal("New with blank account = nil error, want error")
	}
}

func TestMintActsAsMinter(t *testing.T) {
	client, fake := newTestClient(t)

	if err := client.Mint(context.Background(), "bob", "100"); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if fake.mintReq.Minter != "vault" || fake.mintReq.Recipient != "bob" || fake.mintReq.Amount != "100" {
		t.Fatalf("MintRequest = %+v", fake.mintReq)
	}
}

func TestBurnSpendsVaultBalance(t *testing.T) {
	client, fake := newTestClient(t)

	if err := client.Burn(context.Background(), "40"); err != nil {
		t.Fatalf("Burn: %v", err)
	}
	if fake.burnReq.Owner != "vault" || fake.burnReq.Amount != "40" {
		t.Fatalf("BurnRequest = %+v", fake.burnReq)
	}
}

func TestTransferSendsFromVault(t *testing.T) {
	client, fake := newTestClient(t)

	if err := client.Transfer(context.Background(), "bob", "40"); err != nil {
		t.Fatalf("Transfer: %v", err)
	}
	if fake.transferReq.Owner != "vault" || fake.transferReq.Recipient != "bob" || fake.transferReq.Amount != "40" {
		t.Fatalf("TransferRequest = %+v", fake.transferReq)
	}
}

func TestTransferFromPullsIntoVault(t *testing.T) {
	client, fake := newTestClient(t)

	if err := client.TransferFrom(context.Background(), "bob", "40"); err != nil {
		t.Fatalf("TransferFrom: %v", err)
	}
	req := fake.transferFromReq
	if req.Spender != "vault" || req.Owner != "bob" || req.Recipient != "vault" || req.Amount != "40" {
		t.Fatalf("TransferFromRequest = %+v", req)
	}
}

func TestAllowanceParsesAmount(t *testing.T) {
	client, fake := newTestClient(t)
	fake.allowance = "340282366920938463463374607431768211455"

	allowance, err := client.Allowance(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Allowance: %v", err)
	}
	if allowance.String() != fake.allowance {
		t.Fatalf("allowance = %s, want %s", allowance, fake.allowance)
	}
	if fake.allowanceReq.Owner != "bob" || fake.allowanceReq.Spender != "vault" {
		t.Fatalf("AllowanceRequest = %+v", fake.allowanceReq)
	}
}
