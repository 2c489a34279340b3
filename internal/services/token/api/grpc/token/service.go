// Package token exposes the token.v1 gRPC service.
package token

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	tokenv1 "github.com/incalabs/coinwrap/api/gen/go/token/v1"
	"github.com/incalabs/coinwrap/internal/platform/coins"
	apperrors "github.com/incalabs/coinwrap/internal/platform/errors"
	"github.com/incalabs/coinwrap/internal/platform/grpc/pagination"
	"github.com/incalabs/coinwrap/internal/services/token/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultListAccountsPageSize = 50
	maxListAccountsPageSize     = 200
)

// HookNotifier delivers a signed receive notification to the account that
// accepts token sends. Send transfers funds to that account first and rolls
// the transfer back when notification fails.
type HookNotifier interface {
	NotifyReceive(ctx context.Context, sender, amount string) error
}

// Service exposes token.v1 gRPC operations.
type Service struct {
	tokenv1.UnimplementedTokenServiceServer
	store    storage.TokenStore
	notifier HookNotifier
	clock    func() time.Time
}

// NewService creates a token service backed by token storage. The notifier
// may be nil; Send then fails with a precondition error.
func NewService(store storage.TokenStore, notifier HookNotifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		clock:    time.Now,
	}
}

// Mint creates new tokens for a recipient. Only the configured minter
// account may mint.
func (s *Service) Mint(ctx context.Context, in *tokenv1.MintRequest) (*tokenv1.MintResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "mint request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	recipient := strings.TrimSpace(in.Recipient)
	if recipient == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "recipient is required"))
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	meta, err := s.store.GetMeta(ctx)
	if err != nil {
		return nil, storeError("mint", err)
	}
	if strings.TrimSpace(in.Minter) != meta.Minter {
		return nil, apperrors.HandleError(apperrors.WithMetadata(
			apperrors.CodeTokenMinterMismatch,
			"caller is not the minter",
			map[string]string{"minter": meta.Minter},
		))
	}

	balance, supply, err := s.store.Mint(ctx, recipient, amount, s.now())
	if err != nil {
		return nil, storeError("mint", err)
	}
	return &tokenv1.MintResponse{
		Balance:     coins.Format(balance),
		TotalSupply: coins.Format(supply),
	}, nil
}

// Burn destroys tokens held by the owner and shrinks total supply.
func (s *Service) Burn(ctx context.Context, in *tokenv1.BurnRequest) (*tokenv1.BurnResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "burn request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	owner := strings.TrimSpace(in.Owner)
	if owner == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "owner is required"))
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	balance, supply, err := s.store.Burn(ctx, owner, amount, s.now())
	if err != nil {
		return nil, storeError("burn", err)
	}
	return &tokenv1.BurnResponse{
		Balance:     coins.Format(balance),
		TotalSupply: coins.Format(supply),
	}, nil
}

// Transfer moves tokens from the owner to a recipient.
func (s *Service) Transfer(ctx context.Context, in *tokenv1.TransferRequest) (*tokenv1.TransferResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "transfer request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	owner := strings.TrimSpace(in.Owner)
	recipient := strings.TrimSpace(in.Recipient)
	if owner == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "owner is required"))
	}
	if recipient == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "recipient is required"))
	}
	if owner == recipient {
		return nil, status.Error(codes.InvalidArgument, "recipient must differ from owner")
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	ownerBalance, recipientBalance, err := s.store.Transfer(ctx, owner, recipient, amount, s.now())
	if err != nil {
		return nil, storeError("transfer", err)
	}
	return &tokenv1.TransferResponse{
		OwnerBalance:     coins.Format(ownerBalance),
		RecipientBalance: coins.Format(recipientBalance),
	}, nil
}

// TransferFrom moves tokens on behalf of a spender, consuming allowance.
func (s *Service) TransferFrom(ctx context.Context, in *tokenv1.TransferFromRequest) (*tokenv1.TransferFromResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "transfer from request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	spender := strings.TrimSpace(in.Spender)
	owner := strings.TrimSpace(in.Owner)
	recipient := strings.TrimSpace(in.Recipient)
	if spender == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "spender is required"))
	}
	if owner == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "owner is required"))
	}
	if recipient == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "recipient is required"))
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	remaining, err := s.store.TransferFrom(ctx, spender, owner, recipient, amount, s.now())
	if err != nil {
		return nil, storeError("transfer from", err)
	}
	return &tokenv1.TransferFromResponse{
		RemainingAllowance: coins.Format(remaining),
	}, nil
}

// IncreaseAllowance raises what a spender may transfer from the owner.
func (s *Service) IncreaseAllowance(ctx context.Context, in *tokenv1.IncreaseAllowanceRequest) (*tokenv1.IncreaseAllowanceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "increase allowance request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	owner, spender, amount, err := allowanceArgs(in.Owner, in.Spender, in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	allowance, err := s.store.IncreaseAllowance(ctx, owner, spender, amount, s.now())
	if err != nil {
		return nil, storeError("increase allowance", err)
	}
	return &tokenv1.IncreaseAllowanceResponse{
		Allowance: coins.Format(allowance),
	}, nil
}

// DecreaseAllowance lowers what a spender may transfer from the owner.
// The allowance clamps at zero instead of going negative.
func (s *Service) DecreaseAllowance(ctx context.Context, in *tokenv1.DecreaseAllowanceRequest) (*tokenv1.DecreaseAllowanceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "decrease allowance request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	owner, spender, amount, err := allowanceArgs(in.Owner, in.Spender, in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	allowance, err := s.store.DecreaseAllowance(ctx, owner, spender, amount, s.now())
	if err != nil {
		return nil, storeError("decrease allowance", err)
	}
	return &tokenv1.DecreaseAllowanceResponse{
		Allowance: coins.Format(allowance),
	}, nil
}

// Send transfers tokens to the minter account and notifies it through the
// receive hook. A failed notification rolls the transfer back so the owner
// never loses funds on a rejected hook.
func (s *Service) Send(ctx context.Context, in *tokenv1.SendRequest) (*tokenv1.SendResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "send request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	owner := strings.TrimSpace(in.Owner)
	if owner == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "owner is required"))
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}
	if s.notifier == nil {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeTokenHookTargetUnset, "receive hook is not configured"))
	}

	meta, err := s.store.GetMeta(ctx)
	if err != nil {
		return nil, storeError("send", err)
	}
	target := meta.Minter
	if owner == target {
		return nil, status.Error(codes.InvalidArgument, "owner must differ from the hook target")
	}

	ownerBalance, _, err := s.store.Transfer(ctx, owner, target, amount, s.now())
	if err != nil {
		return nil, storeError("send", err)
	}

	if err := s.notifier.NotifyReceive(ctx, owner, coins.Format(amount)); err != nil {
		if _, _, rbErr := s.store.Transfer(ctx, target, owner, amount, s.now()); rbErr != nil {
			return nil, status.Errorf(codes.Internal, "notify receive: %v (rollback failed: %v)", err, rbErr)
		}
		if _, ok := status.FromError(err); ok {
			return nil, err
		}
		return nil, status.Errorf(codes.Internal, "notify receive: %v", err)
	}

	return &tokenv1.SendResponse{
		OwnerBalance: coins.Format(ownerBalance),
	}, nil
}

// Balance returns an account balance. Unknown accounts hold zero.
func (s *Service) Balance(ctx context.Context, in *tokenv1.BalanceRequest) (*tokenv1.BalanceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "balance request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	account := strings.TrimSpace(in.Account)
	if account == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "account is required"))
	}

	balance, err := s.store.Balance(ctx, account)
	if err != nil {
		return nil, storeError("balance", err)
	}
	return &tokenv1.BalanceResponse{Balance: coins.Format(balance)}, nil
}

// Allowance returns what a spender may transfer from the owner.
func (s *Service) Allowance(ctx context.Context, in *tokenv1.AllowanceRequest) (*tokenv1.AllowanceResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "allowance request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	owner := strings.TrimSpace(in.Owner)
	spender := strings.TrimSpace(in.Spender)
	if owner == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "owner is required"))
	}
	if spender == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "spender is required"))
	}

	allowance, err := s.store.Allowance(ctx, owner, spender)
	if err != nil {
		return nil, storeError("allowance", err)
	}
	return &tokenv1.AllowanceResponse{Allowance: coins.Format(allowance)}, nil
}

// TokenInfo returns the token metadata and running total supply.
func (s *Service) TokenInfo(ctx context.Context, in *tokenv1.TokenInfoRequest) (*tokenv1.TokenInfoResponse, error) {
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}

	meta, err := s.store.GetMeta(ctx)
	if err != nil {
		return nil, storeError("token info", err)
	}
	return &tokenv1.TokenInfoResponse{
		Name:        meta.Name,
		Symbol:      meta.Symbol,
		Decimals:    meta.Decimals,
		TotalSupply: coins.Format(meta.TotalSupply),
		Minter:      meta.Minter,
	}, nil
}

// ListAccounts returns one page of accounts ordered by account ID.
func (s *Service) ListAccounts(ctx context.Context, in *tokenv1.ListAccountsRequest) (*tokenv1.ListAccountsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list accounts request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "token store is not configured")
	}
	pageSize := pagination.ClampPageSize(in.PageSize, pagination.PageSizeConfig{
		Default: defaultListAccountsPageSize,
		Max:     maxListAccountsPageSize,
	})

	page, err := s.store.ListBalances(ctx, pageSize, in.PageToken)
	if err != nil {
		return nil, storeError("list accounts", err)
	}
	resp := &tokenv1.ListAccountsResponse{
		Accounts:      make([]*tokenv1.AccountBalance, 0, len(page.Accounts)),
		NextPageToken: page.NextPageToken,
	}
	for _, entry := range page.Accounts {
		resp.Accounts = append(resp.Accounts, &tokenv1.AccountBalance{
			Account: entry.Account,
			Balance: coins.Format(entry.Balance),
		})
	}
	return resp, nil
}

func (s *Service) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

func parseAmount(raw string) (*big.Int, error) {
	amount, err := coins.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeAmountInvalid, "amount is invalid", err)
	}
	if amount.Sign() == 0 {
		return nil, apperrors.New(apperrors.CodeAmountZero, "amount must be greater than zero")
	}
	return amount, nil
}

func allowanceArgs(rawOwner, rawSpender, rawAmount string) (string, string, *big.Int, error) {
	owner := strings.TrimSpace(rawOwner)
	spender := strings.TrimSpace(rawSpender)
	if owner == "" {
		return "", "", nil, apperrors.New(apperrors.CodeAccountEmpty, "owner is required")
	}
	if spender == "" {
		return "", "", nil, apperrors.New(apperrors.CodeAccountEmpty, "spender is required")
	}
	amount, err := parseAmount(rawAmount)
	if err != nil {
		return "", "", nil, err
	}
	return owner, spender, amount, nil
}

// storeError maps storage sentinels to domain errors and everything else
// to an internal status that does not leak storage details.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeNotFound, "token is not initialized", err))
	case errors.Is(err, storage.ErrInsufficientBalance):
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeTokenInsufficientBalance, "balance is insufficient", err))
	case errors.Is(err, storage.ErrInsufficientAllowance):
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeTokenInsufficientAllowance, "allowance is insufficient", err))
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
