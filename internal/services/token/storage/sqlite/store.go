// Package sqlite provides a SQLite-backed token storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/incalabs/coinwrap/internal/platform/coins"
	sqlitemigrate "github.com/incalabs/coinwrap/internal/platform/storage/sqlitemigrate"
	"github.com/incalabs/coinwrap/internal/services/token/storage"
	"github.com/incalabs/coinwrap/internal/services/token/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists token state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite token store and applies embedded migrations.
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

// InitMeta inserts the token metadata row if absent and returns the stored row.
func (s *Store) InitMeta(ctx context.Context, meta storage.Meta) (storage.Meta, error) {
	if err := ctx.Err(); err != nil {
		return storage.Meta{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Meta{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(meta.Minter) == "" {
		return storage.Meta{}, fmt.Errorf("minter is required")
	}
	supply := meta.TotalSupply
	if supply == nil {
		supply = coins.Zero()
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO token_meta (id, name, symbol, decimals, minter, total_supply, created_at, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO NOTHING`,
		meta.Name,
		meta.Symbol,
		meta.Decimals,
		meta.Minter,
		coins.Format(supply),
		toMillis(meta.CreatedAt),
		toMillis(meta.UpdatedAt),
	)
	if err != nil {
		return storage.Meta{}, fmt.Errorf("init token meta: %w", err)
	}
	return s.GetMeta(ctx)
}

// GetMeta returns the token metadata row.
func (s *Store) GetMeta(ctx context.Context) (storage.Meta, error) {
	if err := ctx.Err(); err != nil {
		return storage.Meta{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Meta{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT name, symbol, decimals, minter, total_supply, created_at, updated_at
		 FROM token_meta WHERE id = 1`,
	)
	return scanMeta(row)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMeta(row rowScanner) (storage.Meta, error) {
	var meta storage.Meta
	var supply string
	var createdAt, updatedAt int64
	err := row.Scan(&meta.Name, &meta.Symbol, &meta.Decimals, &meta.Minter, &supply, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Meta{}, storage.ErrNotFound
		}
		return storage.Meta{}, fmt.Errorf("get token meta: %w", err)
	}
	meta.TotalSupply, err = coins.Parse(supply)
	if err != nil {
		return storage.Meta{}, fmt.Errorf("stored total supply: %w", err)
	}
	meta.CreatedAt = fromMillis(createdAt)
	meta.UpdatedAt = fromMillis(updatedAt)
	return meta, nil
}

// Mint credits the recipient and grows total supply in one transaction.
func (s *Store) Mint(ctx context.Context, recipient string, amount *big.Int, now time.Time) (*big.Int, *big.Int, error) {
	var balance, supply *big.Int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := balanceTx(ctx, tx, recipient)
		if err != nil {
			return err
		}
		balance = new(big.Int).Add(current, amount)
		if err := putBalanceTx(ctx, tx, recipient, balance, now); err != nil {
			return err
		}
		currentSupply, err := supplyTx(ctx, tx)
		if err != nil {
			return err
		}
		supply = new(big.Int).Add(currentSupply, amount)
		return putSupplyTx(ctx, tx, supply, now)
	})
	if err != nil {
		return nil, nil, err
	}
	return balance, supply, nil
}

// Burn debits the owner and shrinks total supply in one transaction.
func (s *Store) Burn(ctx context.Context, owner string, amount *big.Int, now time.Time) (*big.Int, *big.Int, error) {
	var balance, supply *big.Int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := balanceTx(ctx, tx, owner)
		if err != nil {
			return err
		}
		if current.Cmp(amount) < 0 {
			return storage.ErrInsufficientBalance
		}
		balance = new(big.Int).Sub(current, amount)
		if err := putBalanceTx(ctx, tx, owner, balance, now); err != nil {
			return err
		}
		currentSupply, err := supplyTx(ctx, tx)
		if err != nil {
			return err
		}
		if currentSupply.Cmp(amount) < 0 {
			return fmt.Errorf("total supply below burn amount")
		}
		supply = new(big.Int).Sub(currentSupply, amount)
		return putSupplyTx(ctx, tx, supply, now)
	})
	if err != nil {
		return nil, nil, err
	}
	return balance, supply, nil
}

// Transfer moves amount between accounts in one transaction.
func (s *Store) Transfer(ctx context.Context, owner, recipient string, amount *big.Int, now time.Time) (*big.Int, *big.Int, error) {
	var ownerBalance, recipientBalance *big.Int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		var err error
		ownerBalance, recipientBalance, err = transferTx(ctx, tx, owner, recipient, amount, now)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return ownerBalance, recipientBalance, nil
}

// TransferFrom consumes allowance and moves amount in one transaction.
func (s *Store) TransferFrom(ctx context.Context, spender, owner, recipient string, amount *big.Int, now time.Time) (*big.Int, error) {
	var remaining *big.Int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		allowance, err := allowanceTx(ctx, tx, owner, spender)
		if err != nil {
			return err
		}
		if allowance.Cmp(amount) < 0 {
			return storage.ErrInsufficientAllowance
		}
		remaining = new(big.Int).Sub(allowance, amount)
		if err := putAllowanceTx(ctx, tx, owner, spender, remaining, now); err != nil {
			return err
		}
		_, _, err = transferTx(ctx, tx, owner, recipient, amount, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return remaining, nil
}

// IncreaseAllowance raises the (owner, spender) allowance.
func (s *Store) IncreaseAllowance(ctx context.Context, owner, spender string, amount *big.Int, now time.Time) (*big.Int, error) {
	var allowance *big.Int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := allowanceTx(ctx, tx, owner, spender)
		if err != nil {
			return err
		}
		allowance = new(big.Int).Add(current, amount)
		return putAllowanceTx(ctx, tx, owner, spender, allowance, now)
	})
	if err != nil {
		return nil, err
	}
	return allowance, nil
}

// DecreaseAllowance lowers the (owner, spender) allowance, clamping at zero.
func (s *Store) DecreaseAllowance(ctx context.Context, owner, spender string, amount *big.Int, now time.Time) (*big.Int, error) {
	var allowance *big.Int
	err := s.inTx(ctx, func(tx *sql.Tx) error {
		current, err := allowanceTx(ctx, tx, owner, spender)
		if err != nil {
			return err
		}
		allowance = new(big.Int).Sub(current, amount)
		if allowance.Sign() < 0 {
			allowance = coins.Zero()
		}
		return putAllowanceTx(ctx, tx, owner, spender, allowance, now)
	})
	if err != nil {
		return nil, err
	}
	return allowance, nil
}

// Balance returns an account balance; absent accounts hold zero.
func (s *Store) Balance(ctx context.Context, account string) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, fmt.Errorf("account is required")
	}
	var stored string
	row := s.sqlDB.QueryRowContext(ctx, `SELECT balance FROM balances WHERE account = ?`, account)
	if err := row.Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coins.Zero(), nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return coins.Parse(stored)
}

// Allowance returns the (owner, spender) allowance; absent rows are zero.
func (s *Store) Allowance(ctx context.Context, owner, spender string) (*big.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	var stored string
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT allowance FROM allowances WHERE owner = ? AND spender = ?`,
		strings.TrimSpace(owner),
		strings.TrimSpace(spender),
	)
	if err := row.Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coins.Zero(), nil
		}
		return nil, fmt.Errorf("get allowance: %w", err)
	}
	return coins.Parse(stored)
}

// ListBalances returns one page of balances ordered by account.
func (s *Store) ListBalances(ctx context.Context, pageSize int, pageToken string) (storage.BalancePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.BalancePage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.BalancePage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.BalancePage{}, fmt.Errorf("page size must be greater than zero")
	}

	page := storage.BalancePage{
		Accounts: make([]storage.AccountBalance, 0, pageSize),
	}
	pageToken = strings.TrimSpace(pageToken)

	var (
		rows *sql.Rows
		err  error
	)
	if pageToken == "" {
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT account, balance FROM balances
			 ORDER BY account ASC
			 LIMIT ?`,
			pageSize+1,
		)
	} else {
		rows, err = s.sqlDB.QueryContext(
			ctx,
			`SELECT account, balance FROM balances
			 WHERE account > ?
			 ORDER BY account ASC
			 LIMIT ?`,
			pageToken,
			pageSize+1,
		)
	}
	if err != nil {
		return storage.BalancePage{}, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry storage.AccountBalance
		var stored string
		if err := rows.Scan(&entry.Account, &stored); err != nil {
			return storage.BalancePage{}, fmt.Errorf("list balances: %w", err)
		}
		entry.Balance, err = coins.Parse(stored)
		if err != nil {
			return storage.BalancePage{}, fmt.Errorf("stored balance for %s: %w", entry.Account, err)
		}
		page.Accounts = append(page.Accounts, entry)
	}
	if err := rows.Err(); err != nil {
		return storage.BalancePage{}, fmt.Errorf("list balances: %w", err)
	}
	if len(page.Accounts) > pageSize {
		page.NextPageToken = page.Accounts[pageSize-1].Account
		page.Accounts = page.Accounts[:pageSize]
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

func transferTx(ctx context.Context, tx *sql.Tx, owner, recipient string, amount *big.Int, now time.Time) (*big.Int, *big.Int, error) {
	ownerCurrent, err := balanceTx(ctx, tx, owner)
	if err != nil {
		return nil, nil, err
	}
	if ownerCurrent.Cmp(amount) < 0 {
		return nil, nil, storage.ErrInsufficientBalance
	}
	ownerBalance := new(big.Int).Sub(ownerCurrent, amount)
	if err := putBalanceTx(ctx, tx, owner, ownerBalance, now); err != nil {
		return nil, nil, err
	}
	recipientCurrent, err := balanceTx(ctx, tx, recipient)
	if err != nil {
		return nil, nil, err
	}
	recipientBalance := new(big.Int).Add(recipientCurrent, amount)
	if err := putBalanceTx(ctx, tx, recipient, recipientBalance, now); err != nil {
		return nil, nil, err
	}
	return ownerBalance, recipientBalance, nil
}

func balanceTx(ctx context.Context, tx *sql.Tx, account string) (*big.Int, error) {
	account = strings.TrimSpace(account)
	if account == "" {
		return nil, fmt.Errorf("account is required")
	}
	var stored string
	row := tx.QueryRowContext(ctx, `SELECT balance FROM balances WHERE account = ?`, account)
	if err := row.Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coins.Zero(), nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return coins.Parse(stored)
}

func putBalanceTx(ctx context.Context, tx *sql.Tx, account string, balance *big.Int, now time.Time) error {
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO balances (account, balance, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(account) DO UPDATE SET
		   balance = excluded.balance,
		   updated_at = excluded.updated_at`,
		strings.TrimSpace(account),
		coins.Format(balance),
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("put balance: %w", err)
	}
	return nil
}

func allowanceTx(ctx context.Context, tx *sql.Tx, owner, spender string) (*big.Int, error) {
	var stored string
	row := tx.QueryRowContext(
		ctx,
		`SELECT allowance FROM allowances WHERE owner = ? AND spender = ?`,
		strings.TrimSpace(owner),
		strings.TrimSpace(spender),
	)
	if err := row.Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return coins.Zero(), nil
		}
		return nil, fmt.Errorf("get allowance: %w", err)
	}
	return coins.Parse(stored)
}

func putAllowanceTx(ctx context.Context, tx *sql.Tx, owner, spender string, allowance *big.Int, now time.Time) error {
	_, err := tx.ExecContext(
		ctx,
		`INSERT INTO allowances (owner, spender, allowance, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(owner, spender) DO UPDATE SET
		   allowance = excluded.allowance,
		   updated_at = excluded.updated_at`,
		strings.TrimSpace(owner),
		strings.TrimSpace(spender),
		coins.Format(allowance),
		toMillis(now),
		toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("put allowance: %w", err)
	}
	return nil
}

func supplyTx(ctx context.Context, tx *sql.Tx) (*big.Int, error) {
	var stored string
	row := tx.QueryRowContext(ctx, `SELECT total_supply FROM token_meta WHERE id = 1`)
	if err := row.Scan(&stored); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get total supply: %w", err)
	}
	return coins.Parse(stored)
}

func putSupplyTx(ctx context.Context, tx *sql.Tx, supply *big.Int, now time.Time) error {
	_, err := tx.ExecContext(
		ctx,
		`UPDATE token_meta SET total_supply = ?, updated_at = ? WHERE id = 1`,
		coins.Format(supply),
		toMillis(now),
	)
	if err != nil {
		return fmt.Errorf("put total supply: %w", err)
	}
	return nil
}

var _ storage.TokenStore = (*Store)(nil)
