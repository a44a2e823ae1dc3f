package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/settlement"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Record relies on the settlements primary key: a package is settled at most once.
func (r *Repository) Record(ctx context.Context, s entities.Settlement) (*entities.Settlement, error) {
	query := `INSERT INTO settlements
		(package_id, courier_id, price, commission, net_earnings, payment_method, earnings_credited, settled_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.querier.Exec(ctx, query,
		s.PackageID,
		s.CourierID,
		s.Price,
		s.Commission,
		s.NetEarnings,
		s.PaymentMethod.String(),
		s.EarningsCredited,
		s.SettledAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, settlement.ErrAlreadySettled
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, settlement.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected settlement repository record error: %w", err)
	}

	return &s, nil
}

func (r *Repository) DebitWallet(ctx context.Context, courierID string, amount int64) (*entities.Balances, error) {
	return r.move(ctx, "wallet_balance = wallet_balance - $2", courierID, amount)
}

func (r *Repository) CreditWallet(ctx context.Context, courierID string, amount int64) (*entities.Balances, error) {
	return r.move(ctx, "wallet_balance = wallet_balance + $2", courierID, amount)
}

func (r *Repository) CreditEarnings(ctx context.Context, courierID string, amount int64) (*entities.Balances, error) {
	return r.move(ctx, "earnings_balance = earnings_balance + $2", courierID, amount)
}

// move applies the balance change in the UPDATE itself, so concurrent
// movements never overwrite each other.
func (r *Repository) move(ctx context.Context, set string, courierID string, amount int64) (*entities.Balances, error) {
	query := `UPDATE users SET ` + set + `, updated_at = NOW()
		WHERE id = $1 AND role = 'COURIER'
		RETURNING id, wallet_balance, earnings_balance`

	var b entities.Balances
	err := r.querier.QueryRow(ctx, query, courierID, amount).
		Scan(&b.CourierID, &b.WalletBalance, &b.EarningsBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, settlement.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected settlement repository balance error: %w", err)
	}

	return &b, nil
}
