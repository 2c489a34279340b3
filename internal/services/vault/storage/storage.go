// Package storage defines persistence contracts for vault service state.
package storage

import (
	"context"
	"errors"
	"math/big"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyBound indicates the token contract binding is already set.
var ErrAlreadyBound = errors.New("token contract already bound")

// ErrEscrowUnderflow indicates a release exceeds the escrowed total.
var ErrEscrowUnderflow = errors.New("escrow underflow")

// Ledger entry kinds.
const (
	KindDeposit  = "deposit"
	KindWithdraw = "withdraw"
	KindReceive  = "receive_to_withdraw"
)

// State stores the vault configuration and running escrow total.
type State struct {
	Owner         string
	NativeDenom   string
	TokenContract string
	EscrowTotal   *big.Int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Bound reports whether a token contract has been bound.
func (s State) Bound() bool {
	return s.TokenContract != ""
}

// LedgerEntry records one escrow movement.
type LedgerEntry struct {
	ID        string
	Kind      string
	Account   string
	Amount    *big.Int
	Denom     string
	CreatedAt time.Time
}

// LedgerPage stores a page of ledger entries.
type LedgerPage struct {
	Entries       []LedgerEntry
	NextPageToken string
}

// LedgerQuery narrows a ledger listing with a SQL condition produced by the
// filter package. An empty clause matches every entry.
type LedgerQuery struct {
	Clause string
	Params []any
}

// VaultStore persists vault state and the escrow ledger. Escrow mutations
// are atomic: the escrow total update and the ledger insert commit in one
// transaction.
type VaultStore interface {
	// InitState inserts the vault state if no row exists yet. The stored
	// row wins on subsequent calls.
	InitState(ctx context.Context, state State) (State, error)
	GetState(ctx context.Context) (State, error)

	// BindTokenContract sets the token contract exactly once.
	BindTokenContract(ctx context.Context, tokenContract string, now time.Time) (State, error)

	// RecordDeposit grows the escrow total and appends a ledger entry.
	RecordDeposit(ctx context.Context, entry LedgerEntry) (State, error)
	// RecordRelease shrinks the escrow total and appends a ledger entry.
	RecordRelease(ctx context.Context, entry LedgerEntry) (State, error)

	// ListLedgerEntries returns one page of ledger entries, newest first.
	ListLedgerEntries(ctx context.Context, query LedgerQuery, pageSize int, pageToken string) (LedgerPage, error)
}
