package tx

import (
	"context"
	"errors"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html 40001 serialization_failure
const pgErrSerializationFailure = "40001"

// ErrSerialization is returned when a serializable transaction lost a race
// against a concurrent writer. Callers decide whether that is a conflict or a retry.
var ErrSerialization = errors.New("transaction serialization failure")

// Manager wraps the transaction manager; every registry mutation goes through Do.
type Manager struct {
	internal *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
	}
}

func (m *Manager) execWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	accessMode pgx.TxAccessMode,
	fn func(ctx context.Context) error,
) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level, AccessMode: accessMode}),
	)

	err := m.internal.DoWithSettings(ctx, txSettings, fn)
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %w", ErrSerialization, err)
	}
	return err
}

// Do runs fn in a SERIALIZABLE read-write transaction. Nested calls join the outer one.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.Serializable, pgx.ReadWrite, fn)
}

// DoReadOnly is used for multi-statement reads that need a consistent snapshot.
func (m *Manager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.execWithIsoLevel(ctx, pgx.RepeatableRead, pgx.ReadOnly, fn)
}

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrSerializationFailure
	}
	return false
}
