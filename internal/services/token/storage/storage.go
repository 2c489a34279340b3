// Package storage defines persistence contracts for token service state.
package storage

import (
	"context"
	"errors"
	"math/big"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrInsufficientBalance indicates an account cannot cover a debit.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrInsufficientAllowance indicates a spender cannot cover a transfer-from.
var ErrInsufficientAllowance = errors.New("insufficient allowance")

// Meta stores the token metadata and running total supply.
type Meta struct {
	Name        string
	Symbol      string
	Decimals    uint32
	Minter      string
	TotalSupply *big.Int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AccountBalance stores one account's balance.
type AccountBalance struct {
	Account string
	Balance *big.Int
}

// BalancePage stores a page of account balances.
type BalancePage struct {
	Accounts      []AccountBalance
	NextPageToken string
}

// TokenStore persists token metadata, balances, and allowances. Amount
// mutations are atomic: the balance check and write commit in one
// transaction.
type TokenStore interface {
	// InitMeta inserts the token metadata if no row exists yet. The stored
	// row wins on subsequent calls.
	InitMeta(ctx context.Context, meta Meta) (Meta, error)
	GetMeta(ctx context.Context) (Meta, error)

	// Mint credits the recipient and grows total supply.
	Mint(ctx context.Context, recipient string, amount *big.Int, now time.Time) (balance, supply *big.Int, err error)
	// Burn debits the owner and shrinks total supply.
	Burn(ctx context.Context, owner string, amount *big.Int, now time.Time) (balance, supply *big.Int, err error)
	// Transfer moves amount from owner to recipient.
	Transfer(ctx context.Context, owner, recipient string, amount *big.Int, now time.Time) (ownerBalance, recipientBalance *big.Int, err error)
	// TransferFrom moves amount from owner to recipient on behalf of
	// spender, consuming the (owner, spender) allowance.
	TransferFrom(ctx context.Context, spender, owner, recipient string, amount *big.Int, now time.Time) (remainingAllowance *big.Int, err error)

	// IncreaseAllowance raises the (owner, spender) allowance.
	IncreaseAllowance(ctx context.Context, owner, spender string, amount *big.Int, now time.Time) (*big.Int, error)
	// DecreaseAllowance lowers the (owner, spender) allowance, clamping at zero.
	DecreaseAllowance(ctx context.Context, owner, spender string, amount *big.Int, now time.Time) (*big.Int, error)

	// Balance returns an account balance; absent accounts hold zero.
	Balance(ctx context.Context, account string) (*big.Int, error)
	// Allowance returns the (owner, spender) allowance; absent rows are zero.
	Allowance(ctx context.Context, owner, spender string) (*big.Int, error)
	// ListBalances returns one page of balances ordered by account.
	ListBalances(ctx context.Context, pageSize int, pageToken string) (BalancePage, error)
}
