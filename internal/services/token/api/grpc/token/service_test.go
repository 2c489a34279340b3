package token

import (
	"context"
	"errors"
	"math/big"
	"sort"
	"testing"
	"time"

	tokenv1 "github.com/incalabs/coinwrap/api/gen/go/token/v1"
	"github.com/incalabs/coinwrap/internal/services/token/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeTokenStore struct {
	meta       *storage.Meta
	balances   map[string]*big.Int
	allowances map[string]*big.Int
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{
		balances:   make(map[string]*big.Int),
		allowances: make(map[string]*big.Int),
	}
}

func (f *fakeTokenStore) seedMeta(minter string) {
	f.meta = &storage.Meta{
		Name:        "Wrapped Atom",
		Symbol:      "WATOM",
		Decimals:    6,
		Minter:      minter,
		TotalSupply: big.NewInt(0),
	}
}

func allowanceKey(owner, spender string) string {
	return owner + "\x00" + spender
}

func (f *fakeTokenStore) InitMeta(_ context.Context, meta storage.Meta) (storage.Meta, error) {
	if f.meta == nil {
		stored := meta
		if stored.TotalSupply == nil {
			stored.TotalSupply = big.NewInt(0)
		}
		f.meta = &stored
	}
	return *f.meta, nil
}

func (f *fakeTokenStore) GetMeta(_ context.Context) (storage.Meta, error) {
	if f.meta == nil {
		return storage.Meta{}, storage.ErrNotFound
	}
	return *f.meta, nil
}

func (f *fakeTokenStore) balance(account string) *big.Int {
	if b, ok := f.balances[account]; ok {
		return b
	}
	return big.NewInt(0)
}

func (f *fakeTokenStore) Mint(_ context.Context, recipient string, amount *big.Int, _ time.Time) (*big.Int, *big.Int, error) {
	if f.meta == nil {
		return nil, nil, storage.ErrNotFound
	}
	balance := new(big.Int).Add(f.balance(recipient), amount)
	f.balances[recipient] = balance
	f.meta.TotalSupply = new(big.Int).Add(f.meta.TotalSupply, amount)
	return balance, f.meta.TotalSupply, nil
}

func (f *fakeTokenStore) Burn(_ context.Context, owner string, amount *big.Int, _ time.Time) (*big.Int, *big.Int, error) {
	if f.meta == nil {
		return nil, nil, storage.ErrNotFound
	}
	current := f.balance(owner)
	if current.Cmp(amount) < 0 {
		return nil, nil, storage.ErrInsufficientBalance
	}
	balance := new(big.Int).Sub(current, amount)
	f.balances[owner] = balance
	f.meta.TotalSupply = new(big.Int).Sub(f.meta.TotalSupply, amount)
	return balance, f.meta.TotalSupply, nil
}

func (f *fakeTokenStore) Transfer(_ context.Context, owner, recipient string, amount *big.Int, _ time.Time) (*big.Int, *big.Int, error) {
	current := f.balance(owner)
	if current.Cmp(amount) < 0 {
		return nil, nil, storage.ErrInsufficientBalance
	}
	ownerBalance := new(big.Int).Sub(current, amount)
	recipientBalance := new(big.Int).Add(f.balance(recipient), amount)
	f.balances[owner] = ownerBalance
	f.balances[recipient] = recipientBalance
	return ownerBalance, recipientBalance, nil
}

func (f *fakeTokenStore) TransferFrom(ctx context.Context, spender, owner, recipient string, amount *big.Int, now time.Time) (*big.Int, error) {
	key := allowanceKey(owner, spender)
	allowance, ok := f.allowances[key]
	if !ok {
		allowance = big.NewInt(0)
	}
	if allowance.Cmp(amount) < 0 {
		return nil, storage.ErrInsufficientAllowance
	}
	if _, _, err := f.Transfer(ctx, owner, recipient, amount, now); err != nil {
		return nil, err
	}
	remaining := new(big.Int).Sub(allowance, amount)
	f.allowances[key] = remaining
	return remaining, nil
}

func (f *fakeTokenStore) IncreaseAllowance(_ context.Context, owner, spender string, amount *big.Int, _ time.Time) (*big.Int, error) {
	key := allowanceKey(owner, spender)
	current, ok := f.allowances[key]
	if !ok {
		current = big.NewInt(0)
	}
	allowance := new(big.Int).Add(current, amount)
	f.allowances[key] = allowance
	return allowance, nil
}

func (f *fakeTokenStore) DecreaseAllowance(_ context.Context, owner, spender string, amount *big.Int, _ time.Time) (*big.Int, error) {
	key := allowanceKey(owner, spender)
	current, ok := f.allowances[key]
	if !ok {
		current = big.NewInt(0)
	}
	allowance := new(big.Int).Sub(current, amount)
	if allowance.Sign() < 0 {
		allowance = big.NewInt(0)
	}
	f.allowances[key] = allowance
	return allowance, nil
}

func (f *fakeTokenStore) Balance(_ context.Context, account string) (*big.Int, error) {
	return f.balance(account), nil
}

func (f *fakeTokenStore) Allowance(_ context.Context, owner, spender string) (*big.Int, error) {
	if allowance, ok := f.allowances[allowanceKey(owner, spender)]; ok {
		return allowance, nil
	}
	return big.NewInt(0), nil
}

func (f *fakeTokenStore) ListBalances(_ context.Context, pageSize int, pageToken string) (storage.BalancePage, error) {
	accounts := make([]string, 0, len(f.balances))
	for account := range f.balances {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)

	page := storage.BalancePage{}
	for _, account := range accounts {
		if pageToken != "" && account <= pageToken {
			continue
		}
		if len(page.Accounts) == pageSize {
			page.NextPageToken = page.Accounts[pageSize-1].Account
			break
		}
		page.Accounts = append(page.Accounts, storage.AccountBalance{
			Account: account,
			Balance: f.balance(account),
		})
	}
	return page, nil
}

type fakeNotifier struct {
	sender string
	amount string
	calls  int
	err    error
}

func (f *fakeNotifier) NotifyReceive(_ context.Context, sender, amount string) error {
	f.calls++
	f.sender = sender
	f.amount = amount
	return f.err
}

func wantCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	statusErr, ok := status.FromError(err)
	if !ok {
		t.Fatalf("err = %v, want gRPC status", err)
	}
	if statusErr.Code() != want {
		t.Fatalf("code = %v, want %v (err: %v)", statusErr.Code(), want, err)
	}
}

func TestMint_OnlyMinterMayMint(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	svc := NewService(store, nil)

	resp, err := svc.Mint(context.Background(), &tokenv1.MintRequest{
		Minter:    "vault-1",
		Recipient: "alice",
		Amount:    "700",
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if resp.Balance != "700" {
		t.Fatalf("balance = %q, want 700", resp.Balance)
	}
	if resp.TotalSupply != "700" {
		t.Fatalf("total supply = %q, want 700", resp.TotalSupply)
	}

	_, err = svc.Mint(context.Background(), &tokenv1.MintRequest{
		Minter:    "mallory",
		Recipient: "mallory",
		Amount:    "1",
	})
	wantCode(t, err, codes.PermissionDenied)
}

func TestMint_RejectsBadAmounts(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	svc := NewService(store, nil)

	for _, amount := range []string{"", "0", "-5", "1.5", "abc"} {
		_, err := svc.Mint(context.Background(), &tokenv1.MintRequest{
			Minter:    "vault-1",
			Recipient: "alice",
			Amount:    amount,
		})
		wantCode(t, err, codes.InvalidArgument)
	}
}

func TestBurn_InsufficientBalance(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.balances["alice"] = big.NewInt(100)
	store.meta.TotalSupply = big.NewInt(100)
	svc := NewService(store, nil)

	_, err := svc.Burn(context.Background(), &tokenv1.BurnRequest{
		Owner:  "alice",
		Amount: "101",
	})
	wantCode(t, err, codes.FailedPrecondition)

	resp, err := svc.Burn(context.Background(), &tokenv1.BurnRequest{
		Owner:  "alice",
		Amount: "40",
	})
	if err != nil {
		t.Fatalf("burn: %v", err)
	}
	if resp.Balance != "60" {
		t.Fatalf("balance = %q, want 60", resp.Balance)
	}
	if resp.TotalSupply != "60" {
		t.Fatalf("total supply = %q, want 60", resp.TotalSupply)
	}
}

func TestTransfer_RejectsSelfTransfer(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	svc := NewService(store, nil)

	_, err := svc.Transfer(context.Background(), &tokenv1.TransferRequest{
		Owner:     "alice",
		Recipient: "alice",
		Amount:    "10",
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestTransferFrom_ConsumesAllowance(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.balances["alice"] = big.NewInt(1000)
	svc := NewService(store, nil)

	if _, err := svc.IncreaseAllowance(context.Background(), &tokenv1.IncreaseAllowanceRequest{
		Owner:   "alice",
		Spender: "vault-1",
		Amount:  "500",
	}); err != nil {
		t.Fatalf("increase allowance: %v", err)
	}

	resp, err := svc.TransferFrom(context.Background(), &tokenv1.TransferFromRequest{
		Spender:   "vault-1",
		Owner:     "alice",
		Recipient: "vault-1",
		Amount:    "300",
	})
	if err != nil {
		t.Fatalf("transfer from: %v", err)
	}
	if resp.RemainingAllowance != "200" {
		t.Fatalf("remaining allowance = %q, want 200", resp.RemainingAllowance)
	}

	_, err = svc.TransferFrom(context.Background(), &tokenv1.TransferFromRequest{
		Spender:   "vault-1",
		Owner:     "alice",
		Recipient: "vault-1",
		Amount:    "201",
	})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestDecreaseAllowance_ClampsAtZero(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	svc := NewService(store, nil)

	if _, err := svc.IncreaseAllowance(context.Background(), &tokenv1.IncreaseAllowanceRequest{
		Owner:   "alice",
		Spender: "vault-1",
		Amount:  "100",
	}); err != nil {
		t.Fatalf("increase allowance: %v", err)
	}
	resp, err := svc.DecreaseAllowance(context.Background(), &tokenv1.DecreaseAllowanceRequest{
		Owner:   "alice",
		Spender: "vault-1",
		Amount:  "250",
	})
	if err != nil {
		t.Fatalf("decrease allowance: %v", err)
	}
	if resp.Allowance != "0" {
		t.Fatalf("allowance = %q, want 0", resp.Allowance)
	}
}

func TestSend_NotifiesHookTarget(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.balances["alice"] = big.NewInt(1000)
	notifier := &fakeNotifier{}
	svc := NewService(store, notifier)

	resp, err := svc.Send(context.Background(), &tokenv1.SendRequest{
		Owner:  "alice",
		Amount: "400",
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if resp.OwnerBalance != "600" {
		t.Fatalf("owner balance = %q, want 600", resp.OwnerBalance)
	}
	if notifier.calls != 1 {
		t.Fatalf("notifier calls = %d, want 1", notifier.calls)
	}
	if notifier.sender != "alice" || notifier.amount != "400" {
		t.Fatalf("notified sender %q amount %q, want alice 400", notifier.sender, notifier.amount)
	}
	if got := store.balance("vault-1"); got.Cmp(big.NewInt(400)) != 0 {
		t.Fatalf("hook target balance = %s, want 400", got)
	}
}

func TestSend_RollsBackWhenHookFails(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.balances["alice"] = big.NewInt(1000)
	notifier := &fakeNotifier{err: status.Error(codes.PermissionDenied, "hook signature rejected")}
	svc := NewService(store, notifier)

	_, err := svc.Send(context.Background(), &tokenv1.SendRequest{
		Owner:  "alice",
		Amount: "400",
	})
	wantCode(t, err, codes.PermissionDenied)

	if got := store.balance("alice"); got.Cmp(big.NewInt(1000)) != 0 {
		t.Fatalf("owner balance after rollback = %s, want 1000", got)
	}
	if got := store.balance("vault-1"); got.Sign() != 0 {
		t.Fatalf("hook target balance after rollback = %s, want 0", got)
	}
}

func TestSend_WrapsOpaqueHookErrors(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.balances["alice"] = big.NewInt(1000)
	notifier := &fakeNotifier{err: errors.New("connection reset")}
	svc := NewService(store, notifier)

	_, err := svc.Send(context.Background(), &tokenv1.SendRequest{
		Owner:  "alice",
		Amount: "400",
	})
	wantCode(t, err, codes.Internal)

	if got := store.balance("alice"); got.Cmp(big.NewInt(1000)) != 0 {
		t.Fatalf("owner balance after rollback = %s, want 1000", got)
	}
}

func TestSend_RequiresNotifier(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.balances["alice"] = big.NewInt(1000)
	svc := NewService(store, nil)

	_, err := svc.Send(context.Background(), &tokenv1.SendRequest{
		Owner:  "alice",
		Amount: "400",
	})
	wantCode(t, err, codes.FailedPrecondition)
}

func TestTokenInfo_NotInitialized(t *testing.T) {
	store := newFakeTokenStore()
	svc := NewService(store, nil)

	_, err := svc.TokenInfo(context.Background(), &tokenv1.TokenInfoRequest{})
	wantCode(t, err, codes.NotFound)
}

func TestTokenInfo_ReturnsMetadata(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.meta.TotalSupply = big.NewInt(12345)
	svc := NewService(store, nil)

	resp, err := svc.TokenInfo(context.Background(), &tokenv1.TokenInfoRequest{})
	if err != nil {
		t.Fatalf("token info: %v", err)
	}
	if resp.Symbol != "WATOM" {
		t.Fatalf("symbol = %q, want WATOM", resp.Symbol)
	}
	if resp.TotalSupply != "12345" {
		t.Fatalf("total supply = %q, want 12345", resp.TotalSupply)
	}
	if resp.Minter != "vault-1" {
		t.Fatalf("minter = %q, want vault-1", resp.Minter)
	}
}

func TestListAccounts_Paginates(t *testing.T) {
	store := newFakeTokenStore()
	store.seedMeta("vault-1")
	store.balances["alice"] = big.NewInt(1)
	store.balances["bob"] = big.NewInt(2)
	store.balances["carol"] = big.NewInt(3)
	svc := NewService(store, nil)

	resp, err := svc.ListAccounts(context.Background(), &tokenv1.ListAccountsRequest{PageSize: 2})
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(resp.Accounts) != 2 {
		t.Fatalf("accounts len = %d, want 2", len(resp.Accounts))
	}
	if resp.NextPageToken == "" {
		t.Fatal("expected next page token")
	}

	next, err := svc.ListAccounts(context.Background(), &tokenv1.ListAccountsRequest{
		PageSize:  2,
		PageToken: resp.NextPageToken,
	})
	if err != nil {
		t.Fatalf("list accounts page 2: %v", err)
	}
	if len(next.Accounts) != 1 {
		t.Fatalf("second page len = %d, want 1", len(next.Accounts))
	}
	if next.Accounts[0].Account != "carol" {
		t.Fatalf("second page account = %q, want carol", next.Accounts[0].Account)
	}
}
