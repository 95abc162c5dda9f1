package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"booking-engine/internal/infra"
	"booking-engine/internal/infra/db"
	"booking-engine/internal/infra/repository"
	"booking-engine/internal/pkg/config"
	"booking-engine/internal/pkg/errs"
	"booking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

const (
	maxRetries  = 3
	baseBackoff = 100 * time.Millisecond
)

type PostgresUoW struct {
	pool      *pgxpool.Pool
	txTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, cfg config.Config) *PostgresUoW {
	return &PostgresUoW{
		pool:      pool,
		txTimeout: cfg.DB.TxTimeout,
	}
}

// ReadCommitted plus row locks; the locked resource row is the serialization point
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.txTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.txTimeout)
		defer cancel()
	}
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(infra.WrapRepoErr("begin transaction", err), errTransactionBegin)
		}

		err = fn(ctx, newPgTx(pgxTx))
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(infra.WrapRepoErr("commit transaction", err), errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !infra.IsRetryable(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errs.ErrConcurrencyConflict)
		}

		waitTime := calculateBackoff(attempt, baseBackoff)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errs.ErrConcurrencyConflict
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

// pgTx hands out stateless repositories bound to one pgx transaction.
type pgTx struct {
	dbtx db.DBTX

	roomBookings       *repository.RoomBookingRepository
	restaurantBookings *repository.RestaurantBookingRepository
	locks              *repository.ResourceLocker
	ledger             *repository.CapacityLedger
	users              *repository.UserRepository
	reads              *repository.CommandReads
}

func newPgTx(dbtx db.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx}
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) RoomBookings() shared.RoomBookingRepository {
	if t.roomBookings == nil {
		t.roomBookings = repository.NewRoomBookingRepository()
	}
	return t.roomBookings
}

func (t *pgTx) RestaurantBookings() shared.RestaurantBookingRepository {
	if t.restaurantBookings == nil {
		t.restaurantBookings = repository.NewRestaurantBookingRepository()
	}
	return t.restaurantBookings
}

func (t *pgTx) Locks() shared.ResourceLocker {
	if t.locks == nil {
		t.locks = repository.NewResourceLocker()
	}
	return t.locks
}

func (t *pgTx) Ledger() shared.CapacityLedger {
	if t.ledger == nil {
		t.ledger = repository.NewCapacityLedger()
	}
	return t.ledger
}

func (t *pgTx) Users() shared.UserRepository {
	if t.users == nil {
		t.users = repository.NewUserRepository()
	}
	return t.users
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.reads == nil {
		t.reads = repository.NewCommandReads(t.dbtx)
	}
	return t.reads
}
