package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hospital-scheduler/internal/booking"
	"hospital-scheduler/internal/model"
)

// postgres error codes we translate
const (
	codeSerialization = "40001"
	codeDeadlock      = "40P01"
	codeExclusion     = "23P01"
	codeForeignKey    = "23503"
	codeUnique        = "23505"
	codeCheck         = "23514"
)

// serializable transactions are retried this many times before giving up
const maxTxAttempts = 3

type queryable interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Store is the postgres implementation of booking.Repository and of the
// doctor/patient/room CRUD used by the handlers.
type Store struct {
	pool *pgxpool.Pool
	q    queryable
	tx   pgx.Tx
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, q: pool}
}

func NewPool(ctx context.Context, url string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

// Atomically runs fn inside a SERIALIZABLE transaction, retrying when
// postgres aborts it with a serialization failure. Nested calls reuse the
// outer transaction.
func (s *Store) Atomically(ctx context.Context, fn func(ctx context.Context, tx booking.Repository) error) error {
	if s.tx != nil {
		return fn(ctx, s)
	}

	var err error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if !retryable(err) {
			return err
		}
	}
	return err
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context, tx booking.Repository) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := fn(ctx, &Store{pool: s.pool, q: tx, tx: tx}); err != nil {
		return err
	}
	return translate(tx.Commit(ctx))
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == codeSerialization || pgErr.Code == codeDeadlock
}

// translate maps constraint violations onto domain errors. Anything else is
// returned unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return model.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeExclusion:
		return &booking.ConflictError{Kind: conflictKind(pgErr.ConstraintName)}
	case codeForeignKey:
		return fmt.Errorf("%w (%s)", model.ErrUnknownReference, pgErr.ConstraintName)
	case codeUnique:
		return model.ErrAlreadyExists
	case codeCheck:
		if strings.HasPrefix(pgErr.ConstraintName, "rooms_") {
			return model.ErrEmptyRoomName
		}
	}
	return err
}

// exclusion constraints are named appointments_<resource>_excl
func conflictKind(constraint string) booking.ConflictKind {
	switch {
	case strings.Contains(constraint, "_doctor_"):
		return booking.DoctorConflict
	case strings.Contains(constraint, "_room_"):
		return booking.RoomConflict
	case strings.Contains(constraint, "_patient_"):
		return booking.PatientConflict
	}
	return booking.DoctorConflict
}

func (s *Store) deleteOne(ctx context.Context, sql string, arg any) error {
	tag, err := s.q.Exec(ctx, sql, arg)
	if err != nil {
		return translate(err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
