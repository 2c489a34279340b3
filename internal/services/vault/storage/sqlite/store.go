// Package sqlite provides a SQLite-backed vault storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/incalabs/coinwrap/internal/platform/coins"
	sqlitemigrate "github.com/incalabs/coinwrap/internal/platform/storage/sqlitemigrate"
	"github.com/incalabs/coinwrap/internal/services/vault/storage"
	"github.com/incalabs/coinwrap/internal/services/vault/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists vault state and the escrow ledger in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite vault store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// InitState inserts the vault state row if absent and returns the stored row.
func (s *Store) InitState(ctx context.Context, state storage.State) (storage.State, error) {
	if err := ctx.Err(); err != nil {
		return storage.State{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.State{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(state.Owner) == "" {
		return storage.State{}, fmt.Errorf("owner is required")
	}
	if strings.TrimSpace(state.NativeDenom) == "" {
		return storage.State{}, fmt.Errorf("native denom is required")
	}
	escrow := state.EscrowTotal
	if escrow == nil {
		escrow = coins.Zero()
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO vault_state (id, owner, native_denom, token_contract, escrow_total, created_at, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		state.Owner,
		state.NativeDenom,
		state.TokenContract,
		coins.Format(escrow),
		toMillis(state.CreatedAt),
		toMillis(state.UpdatedAt),
	)
	if err != nil {
		return storage.State{}, fmt.Errorf("init vault state: %w", err)
	}
	return s.GetState(ctx)
}

// GetState returns the vault state row.
func (s *Store) GetState(ctx context.Context) (storage.State, error) {
	if err := ctx.Err(); err != nil {
		return storage.State{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.State{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT owner, native_denom, token_contract, escrow_total, created_at, updated_at
		 FROM vault_state WHERE id = 1`,
	)
	return scanState(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanState(row rowScanner) (storage.State, error) {
	var state storage.State
	var escrow string
	var createdAt, updatedAt int64
	err := row.Scan(&state.Owner, &state.NativeDenom, &state.TokenContract, &escrow, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.State{}, storage.ErrNotFound
		}
		return storage.State{}, fmt.Errorf("get vault state: %w", err)
	}
	state.EscrowTotal, err = coins.Parse(escrow)
	if err != nil {
		return storage.State{}, fmt.Errorf("stored escrow total: %w", err)
	}
	state.CreatedAt = fromMillis(createdAt)
	state.UpdatedAt = fromMillis(updatedAt)
	return state, nil
}

// BindTokenContract sets the token contract exactly once.
func (s *Store) BindTokenContract(ctx context.Context, tokenContract string, now time.Time) (storage.State, error) {
	tokenContract = strings.TrimSpace(tokenContract)
	if tokenContract == "" {
		return storage.State{}, fmt.Errorf("token contract is required")
	}
	var state storage.State
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := stateTx(ctx, tx)
		if err != nil {
			return err
		}
		if current.Bound() {
			return storage.ErrAlreadyBound
		}
		_, err = tx.ExecContext(
			ctx,
			`UPDATE vault_state SET token_contract = ?, updated_at = ? WHERE id = 1`,
			tokenContract,
			toMillis(now),
		)
		if err != nil {
			return fmt.Errorf("bind token contract: %w", err)
		}
		state = current
		state.TokenContract = tokenContract
		state.UpdatedAt = now.UTC()
		return nil
	})
	if err != nil {
		return storage.State{}, err
	}
	return state, nil
}

// RecordDeposit grows the escrow total and appends a ledger entry in one
// transaction.
func (s *Store) RecordDeposit(ctx context.Context, entry storage.LedgerEntry) (storage.State, error) {
	var state storage.State
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := stateTx(ctx, tx)
		if err != nil {
			return err
		}
		state = current
		state.EscrowTotal = new(big.Int).Add(current.EscrowTotal, entry.Amount)
		state.UpdatedAt = entry.CreatedAt.UTC()
		if err := putEscrowTx(ctx, tx, state.EscrowTotal, entry.CreatedAt); err != nil {
			return err
		}
		return insertLedgerTx(ctx, tx, entry)
	})
	if err != nil {
		return storage.State{}, err
	}
	return state, nil
}

// RecordRelease shrinks the escrow total and appends a ledger entry in one
// transaction.
func (s *Store) RecordRelease(ctx context.Context, entry storage.LedgerEntry) (storage.State, error) {
	var state storage.State
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := stateTx(ctx, tx)
		if err != nil {
			return err
		}
		if current.EscrowTotal.Cmp(entry.Amount) < 0 {
			return storage.ErrEscrowUnderflow
		}
		state = current
		state.EscrowTotal = new(big.Int).Sub(current.EscrowTotal, entry.Amount)
		state.UpdatedAt = entry.CreatedAt.UTC()
		if err := putEscrowTx(ctx, tx, state.EscrowTotal, entry.CreatedAt); err != nil {
			return err
		}
		return insertLedgerTx(ctx, tx, entry)
	})
	if err != nil {
		return storage.State{}, err
	}
	return state, nil
}

// ListLedgerEntries returns one page of ledger entries, newest first. The
// page token is the sequence number of the last returned entry.
func (s *Store) ListLedgerEntries(ctx context.Context, query storage.LedgerQuery, pageSize int, pageToken string) (storage.LedgerPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.LedgerPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.LedgerPage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.LedgerPage{}, fmt.Errorf("page size must be greater than zero")
	}

	conditions := make([]string, 0, 2)
	params := make([]any, 0, len(query.Params)+2)
	if strings.TrimSpace(query.Clause) != "" {
		conditions = append(conditions, query.Clause)
		params = append(params, query.Params...)
	}
	pageToken = strings.TrimSpace(pageToken)
	if pageToken != "" {
		cursor, err := strconv.ParseInt(pageToken, 10, 64)
		if err != nil {
			return storage.LedgerPage{}, fmt.Errorf("page token is invalid")
		}
		conditions = append(conditions, "seq < ?")
		params = append(params, cursor)
	}

	stmt := `SELECT seq, id, kind, account, amount, denom, created_at FROM ledger_entries`
	if len(conditions) > 0 {
		stmt += " WHERE " + strings.Join(conditions, " AND ")
	}
	stmt += " ORDER BY seq DESC LIMIT ?"
	params = append(params, pageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, stmt, params...)
	if err != nil {
		return storage.LedgerPage{}, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	page := storage.LedgerPage{
		Entries: make([]storage.LedgerEntry, 0, pageSize),
	}
	var lastSeq int64
	for rows.Next() {
		var entry storage.LedgerEntry
		var seq int64
		var amount string
		var createdAt int64
		if err := rows.Scan(&seq, &entry.ID, &entry.Kind, &entry.Account, &amount, &entry.Denom, &createdAt); err != nil {
			return storage.LedgerPage{}, fmt.Errorf("list ledger entries: %w", err)
		}
		entry.Amount, err = coins.Parse(amount)
		if err != nil {
			return storage.LedgerPage{}, fmt.Errorf("stored ledger amount for %s: %w", entry.ID, err)
		}
		entry.CreatedAt = fromMillis(createdAt)
		if len(page.Entries) == pageSize {
			page.NextPageToken = strconv.FormatInt(lastSeq, 10)
			break
		}
		page.Entries = append(page.Entries, entry)
		lastSeq = seq
	}
	if err := rows.Err(); err != nil {
		return storage.LedgerPage{}, fmt.Errorf("list ledger entries: %w", err)
	}
	return page, nil
}

func (s *Store) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func stateTx(ctx context.Context, tx *sql.Tx) (storage.State, error) {
	row := tx.QueryRowContext(
		ctx,
		`SELECT owner, native_denom, token_contract, escrow_total, created_at, updated_at
		 FROM vault_state WHERE id = 1`,
	)
	return scanState(row)
}

func putEscrowTx(ctx context.Context, tx *sql.Tx, escrow *big.Int, now time.Time) error {
	_, err := tx.ExecContext(
		ctx,
		`UPDATE vault_state SET escrow_total = ?, updated_at = ? WHERE id = 1`,
		coins.Format(escrow),
		toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("put escrow total: %w", err)
	}
	return nil
}

func insertLedgerTx(ctx context.Context, tx *sql.Tx, entry storage.LedgerEntry) error {
	if strings.TrimSpace(entry.ID) == "" {
		return fmt.Errorf("ledger entry id is required")
	}
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO ledger_entries (id, kind, account, amount, denom, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.Kind,
		entry.Account,
		coins.Format(entry.Amount),
		entry.Denom,
		toMillis(entry.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

var _ storage.VaultStore = (*Store)(nil)
