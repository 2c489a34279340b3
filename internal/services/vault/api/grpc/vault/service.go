// Package vault exposes the vault.v1 gRPC service.
package vault

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"time"

	vaultv1 "github.com/incalabs/coinwrap/api/gen/go/vault/v1"
	"github.com/incalabs/coinwrap/internal/platform/coins"
	apperrors "github.com/incalabs/coinwrap/internal/platform/errors"
	"github.com/incalabs/coinwrap/internal/platform/grpc/pagination"
	"github.com/incalabs/coinwrap/internal/platform/hooksig"
	"github.com/incalabs/coinwrap/internal/platform/id"
	"github.com/incalabs/coinwrap/internal/services/vault/filter"
	"github.com/incalabs/coinwrap/internal/services/vault/grant"
	"github.com/incalabs/coinwrap/internal/services/vault/storage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const (
	defaultListLedgerPageSize = 50
	maxListLedgerPageSize     = 200
)

// TokenGateway drives the token service as the vault account. Remote
// failures surface as gRPC status errors so callers see the token
// service's reason.
type TokenGateway interface {
	Mint(ctx context.Context, recipient, amount string) error
	Burn(ctx context.Context, amount string) error
	Transfer(ctx context.Context, recipient, amount string) error
	TransferFrom(ctx context.Context, owner, amount string) error
	Allowance(ctx context.Context, owner string) (*big.Int, error)
}

// Service exposes vault.v1 gRPC operations.
type Service struct {
	vaultv1.UnimplementedVaultServiceServer
	store    storage.VaultStore
	tokens   TokenGateway
	keyring  *hooksig.Keyring
	grantCfg grant.Config
	clock    func() time.Time
	newID    func() (string, error)
}

// NewService creates a vault service backed by vault storage, the token
// gateway, the hook keyring, and the owner grant verifier configuration.
func NewService(store storage.VaultStore, tokens TokenGateway, keyring *hooksig.Keyring, grantCfg grant.Config) *Service {
	return &Service{
		store:    store,
		tokens:   tokens,
		keyring:  keyring,
		grantCfg: grantCfg,
		clock:    time.Now,
		newID:    id.NewID,
	}
}

// BindTokenContract sets the token contract exactly once. The caller must
// present an owner grant naming the vault owner.
func (s *Service) BindTokenContract(ctx context.Context, in *vaultv1.BindTokenContractRequest) (*vaultv1.BindTokenContractResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "bind token contract request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "vault store is not configured")
	}
	tokenContract := strings.TrimSpace(in.TokenContract)
	if tokenContract == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeVaultContractInvalid, "token contract is required"))
	}

	state, err := s.store.GetState(ctx)
	if err != nil {
		return nil, storeError("bind token contract", err)
	}
	if _, err := grant.Validate(in.OwnerGrant, state.Owner, s.grantCfg); err != nil {
		return nil, apperrors.HandleError(err)
	}

	bound, err := s.store.BindTokenContract(ctx, tokenContract, s.now())
	if err != nil {
		return nil, storeError("bind token contract", err)
	}
	return &vaultv1.BindTokenContractResponse{
		Info: stateToProto(bound),
	}, nil
}

// Deposit escrows native funds and mints the same amount of wrapped tokens
// for the sender. A failed mint rolls the escrow back.
func (s *Service) Deposit(ctx context.Context, in *vaultv1.DepositRequest) (*vaultv1.DepositResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "deposit request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "vault store is not configured")
	}
	if s.tokens == nil {
		return nil, status.Error(codes.Internal, "token gateway is not configured")
	}
	sender := strings.TrimSpace(in.Sender)
	if sender == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "sender is required"))
	}

	state, err := s.store.GetState(ctx)
	if err != nil {
		return nil, storeError("deposit", err)
	}
	if !state.Bound() {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeVaultContractUnbound, "token contract is not bound"))
	}

	if len(in.Funds) == 0 {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeVaultDepositEmpty, "deposit requires funds"))
	}
	total := coins.Zero()
	for _, fund := range in.Funds {
		if fund == nil {
			continue
		}
		denom := strings.TrimSpace(fund.Denom)
		if denom != state.NativeDenom {
			return nil, apperrors.HandleError(apperrors.WithMetadata(
				apperrors.CodeVaultDenomMismatch,
				"deposit denom is not accepted",
				map[string]string{"denom": denom, "expected": state.NativeDenom},
			))
		}
		amount, err := coins.Parse(strings.TrimSpace(fund.Amount))
		if err != nil {
			return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeAmountInvalid, "deposit amount is invalid", err))
		}
		total = new(big.Int).Add(total, amount)
	}
	if total.Sign() == 0 {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeVaultDepositEmpty, "deposit amount must be greater than zero"))
	}

	entryID, err := s.generateID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "generate ledger entry id: %v", err)
	}
	entry := storage.LedgerEntry{
		ID:        entryID,
		Kind:      storage.KindDeposit,
		Account:   sender,
		Amount:    total,
		Denom:     state.NativeDenom,
		CreatedAt: s.now(),
	}
	if _, err := s.store.RecordDeposit(ctx, entry); err != nil {
		return nil, storeError("deposit", err)
	}

	minted := coins.Format(total)
	if err := s.tokens.Mint(ctx, sender, minted); err != nil {
		rollbackID, idErr := s.generateID()
		if idErr != nil {
			return nil, status.Errorf(codes.Internal, "mint wrapped tokens: %v (rollback failed: %v)", err, idErr)
		}
		rollback := storage.LedgerEntry{
			ID:        rollbackID,
			Kind:      storage.KindWithdraw,
			Account:   sender,
			Amount:    total,
			Denom:     state.NativeDenom,
			CreatedAt: s.now(),
		}
		if _, rbErr := s.store.RecordRelease(ctx, rollback); rbErr != nil {
			return nil, status.Errorf(codes.Internal, "mint wrapped tokens: %v (rollback failed: %v)", err, rbErr)
		}
		return nil, gatewayError("mint wrapped tokens", err)
	}

	return &vaultv1.DepositResponse{
		Entry:  entryToProto(entry),
		Minted: minted,
	}, nil
}

// Withdraw burns wrapped tokens pulled from the sender's allowance and
// releases the same amount of escrowed native funds.
func (s *Service) Withdraw(ctx context.Context, in *vaultv1.WithdrawRequest) (*vaultv1.WithdrawResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "withdraw request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "vault store is not configured")
	}
	if s.tokens == nil {
		return nil, status.Error(codes.Internal, "token gateway is not configured")
	}
	sender := strings.TrimSpace(in.Sender)
	if sender == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "sender is required"))
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	state, err := s.store.GetState(ctx)
	if err != nil {
		return nil, storeError("withdraw", err)
	}
	if !state.Bound() {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeVaultContractUnbound, "token contract is not bound"))
	}

	allowance, err := s.tokens.Allowance(ctx, sender)
	if err != nil {
		return nil, gatewayError("check allowance", err)
	}
	if allowance.Cmp(amount) < 0 {
		return nil, apperrors.HandleError(apperrors.WithMetadata(
			apperrors.CodeVaultAllowanceExceeded,
			"withdraw exceeds the vault allowance",
			map[string]string{"allowance": coins.Format(allowance)},
		))
	}

	amountStr := coins.Format(amount)
	if err := s.tokens.TransferFrom(ctx, sender, amountStr); err != nil {
		return nil, gatewayError("pull wrapped tokens", err)
	}
	if err := s.tokens.Burn(ctx, amountStr); err != nil {
		if rbErr := s.tokens.Transfer(ctx, sender, amountStr); rbErr != nil {
			return nil, status.Errorf(codes.Internal, "burn wrapped tokens: %v (rollback failed: %v)", err, rbErr)
		}
		return nil, gatewayError("burn wrapped tokens", err)
	}

	entryID, err := s.generateID()
	if err != nil {
		if rbErr := s.tokens.Mint(ctx, sender, amountStr); rbErr != nil {
			return nil, status.Errorf(codes.Internal, "generate ledger entry id: %v (rollback failed: %v)", err, rbErr)
		}
		return nil, status.Errorf(codes.Internal, "generate ledger entry id: %v", err)
	}
	entry := storage.LedgerEntry{
		ID:        entryID,
		Kind:      storage.KindWithdraw,
		Account:   sender,
		Amount:    amount,
		Denom:     state.NativeDenom,
		CreatedAt: s.now(),
	}
	if _, err := s.store.RecordRelease(ctx, entry); err != nil {
		if rbErr := s.tokens.Mint(ctx, sender, amountStr); rbErr != nil {
			return nil, status.Errorf(codes.Internal, "release escrow: %v (rollback failed: %v)", err, rbErr)
		}
		return nil, storeError("withdraw", err)
	}

	return &vaultv1.WithdrawResponse{
		Entry: entryToProto(entry),
		Released: &vaultv1.Coin{
			Denom:  state.NativeDenom,
			Amount: amountStr,
		},
	}, nil
}

// Receive handles a signed hook from the bound token contract. The wrapped
// tokens were already moved to the vault account; this burns them and
// releases the matching escrow.
func (s *Service) Receive(ctx context.Context, in *vaultv1.ReceiveRequest) (*vaultv1.ReceiveResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "receive request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "vault store is not configured")
	}
	if s.tokens == nil {
		return nil, status.Error(codes.Internal, "token gateway is not configured")
	}
	if s.keyring == nil {
		return nil, status.Error(codes.Internal, "hook keyring is not configured")
	}
	sender := strings.TrimSpace(in.Sender)
	if sender == "" {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeAccountEmpty, "sender is required"))
	}
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return nil, apperrors.HandleError(err)
	}

	state, err := s.store.GetState(ctx)
	if err != nil {
		return nil, storeError("receive", err)
	}
	if !state.Bound() {
		return nil, apperrors.HandleError(apperrors.New(apperrors.CodeVaultContractUnbound, "token contract is not bound"))
	}
	tokenContract := strings.TrimSpace(in.TokenContract)
	if tokenContract != state.TokenContract {
		return nil, apperrors.HandleError(apperrors.WithMetadata(
			apperrors.CodeVaultHookSenderMismatch,
			"hook is not from the bound token contract",
			map[string]string{"token_contract": tokenContract},
		))
	}
	payload := hooksig.Payload(in.Sender, in.Amount)
	if err := s.keyring.Verify(tokenContract, payload, in.Signature, in.KeyId); err != nil {
		return nil, apperrors.HandleError(apperrors.Wrap(apperrors.CodeVaultHookSignatureInvalid, "hook signature is invalid", err))
	}

	entryID, err := s.generateID()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "generate ledger entry id: %v", err)
	}
	entry := storage.LedgerEntry{
		ID:        entryID,
		Kind:      storage.KindReceive,
		Account:   sender,
		Amount:    amount,
		Denom:     state.NativeDenom,
		CreatedAt: s.now(),
	}
	if _, err := s.store.RecordRelease(ctx, entry); err != nil {
		return nil, storeError("receive", err)
	}

	amountStr := coins.Format(amount)
	if err := s.tokens.Burn(ctx, amountStr); err != nil {
		rollbackID, idErr := s.generateID()
		if idErr != nil {
			return nil, status.Errorf(codes.Internal, "burn received tokens: %v (rollback failed: %v)", err, idErr)
		}
		rollback := storage.LedgerEntry{
			ID:        rollbackID,
			Kind:      storage.KindDeposit,
			Account:   sender,
			Amount:    amount,
			Denom:     state.NativeDenom,
			CreatedAt: s.now(),
		}
		if _, rbErr := s.store.RecordDeposit(ctx, rollback); rbErr != nil {
			return nil, status.Errorf(codes.Internal, "burn received tokens: %v (rollback failed: %v)", err, rbErr)
		}
		return nil, gatewayError("burn received tokens", err)
	}

	return &vaultv1.ReceiveResponse{
		Entry: entryToProto(entry),
		Released: &vaultv1.Coin{
			Denom:  state.NativeDenom,
			Amount: amountStr,
		},
	}, nil
}

// Info returns the vault configuration and escrow total.
func (s *Service) Info(ctx context.Context, in *vaultv1.InfoRequest) (*vaultv1.InfoResponse, error) {
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "vault store is not configured")
	}

	state, err := s.store.GetState(ctx)
	if err != nil {
		return nil, storeError("info", err)
	}
	return &vaultv1.InfoResponse{
		Info: stateToProto(state),
	}, nil
}

// ListLedgerEntries returns one page of ledger entries, newest first. The
// filter accepts AIP-160 expressions over kind, account, denom, and
// created_at.
func (s *Service) ListLedgerEntries(ctx context.Context, in *vaultv1.ListLedgerEntriesRequest) (*vaultv1.ListLedgerEntriesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list ledger entries request is required")
	}
	if s == nil || s.store == nil {
		return nil, status.Error(codes.Internal, "vault store is not configured")
	}

	condition, err := filter.ParseLedgerFilter(in.Filter)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "filter is invalid: %v", err)
	}
	pageSize := pagination.ClampPageSize(in.PageSize, pagination.PageSizeConfig{
		Default: defaultListLedgerPageSize,
		Max:     maxListLedgerPageSize,
	})

	page, err := s.store.ListLedgerEntries(ctx, storage.LedgerQuery{
		Clause: condition.Clause,
		Params: condition.Params,
	}, pageSize, in.PageToken)
	if err != nil {
		return nil, storeError("list ledger entries", err)
	}

	resp := &vaultv1.ListLedgerEntriesResponse{
		Entries:       make([]*vaultv1.LedgerEntry, 0, len(page.Entries)),
		NextPageToken: page.NextPageToken,
	}
	for _, entry := range page.Entries {
		resp.Entries = append(resp.Entries, entryToProto(entry))
	}
	return resp, nil
}

func (s *Service) now() time.Time {
	if s.clock != nil {
		return s.clock()
	}
	return time.Now()
}

func (s *Service) generateID() (string, error) {
	if s.newID != nil {
		return s.newID()
	}
	return id.NewID()
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

func stateToProto(state storage.State) *vaultv1.VaultInfo {
	return &vaultv1.VaultInfo{
		Owner:         state.Owner,
		TokenContract: state.TokenContract,
		NativeDenom:   state.NativeDenom,
		EscrowTotal:   coins.Format(state.EscrowTotal),
	}
}

func entryToProto(entry storage.LedgerEntry) *vaultv1.LedgerEntry {
	return &vaultv1.LedgerEntry{
		Id:        entry.ID,
		Kind:      entry.Kind,
		Account:   entry.Account,
		Amount:    coins.Format(entry.Amount),
		Denom:     entry.Denom,
		CreatedAt: timestamppb.New(entry.CreatedAt),
	}
}

// storeError maps storage sentinels to domain errors and everything else
// to an internal status that does not leak storage details.
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeNotFound, "vault is not initialized", err))
	case errors.Is(err, storage.ErrAlreadyBound):
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeVaultContractAlreadyBound, "token contract is already bound", err))
	case errors.Is(err, storage.ErrEscrowUnderflow):
		return apperrors.HandleError(apperrors.Wrap(apperrors.CodeVaultEscrowUnderflow, "release exceeds escrowed funds", err))
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}

// gatewayError passes token service statuses through and hides transport
// details otherwise.
func gatewayError(op string, err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Errorf(codes.Internal, "%s: %v", op, err)
}
