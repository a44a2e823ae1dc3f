package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"id", "name", "phone", "email", "password_hash", "role",
	"courier_type", "vehicle_type", "vehicle_plate", "operating_city",
	"id_card_number", "license_number", "photo_url", "address", "is_available",
	"wallet_balance", "earnings_balance", "is_blocked", "created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, u entities.User) (*entities.User, error) {
	m := FromDomain(&u)

	query, args, err := qb.Insert("users").
		Columns(userColumns...).
		Values(
			m.ID, m.Name, m.Phone, m.Email, m.PasswordHash, m.Role,
			m.CourierType, m.VehicleType, m.VehiclePlate, m.OperatingCity,
			m.IDCardNumber, m.LicenseNumber, m.PhotoURL, m.Address, m.IsAvailable,
			m.WalletBalance, m.EarningsBalance, m.IsBlocked, m.CreatedAt, m.UpdatedAt,
		).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	created, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrConflict
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) Update(ctx context.Context, modify entities.UserModify) (*entities.User, error) {
	m := FromDomainModify(&modify)
	if m.ID == nil {
		return nil, user.ErrInvalidUserID
	}

	builder := qb.Update("users")

	// optional fields
	if m.Name != nil {
		builder = builder.Set("name", m.Name)
	}
	if m.Email != nil {
		builder = builder.Set("email", m.Email)
	}
	if m.IsBlocked != nil {
		builder = builder.Set("is_blocked", m.IsBlocked)
	}
	if m.IsAvailable != nil {
		builder = builder.Set("is_available", m.IsAvailable)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": *m.ID}).
		Suffix("RETURNING " + strings.Join(userColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	updated, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(updated), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"phone": phone})
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := qb.Select(userColumns...).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	model, err := scanUser(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(model), nil
}

func (r *Repository) List(ctx context.Context, role *entities.UserRole) ([]entities.User, error) {
	builder := qb.Select(userColumns...).From("users")
	if role != nil {
		builder = builder.Where(sq.Eq{"role": role.String()})
	}

	query, args, err := builder.OrderBy("created_at DESC", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]UserDB, 0, 8)
	for rows.Next() {
		model, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list error: %w", err)
		}
		models = append(models, *model)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	return ToDomainList(models), nil
}

func scanUser(row pgx.Row) (*UserDB, error) {
	var m UserDB
	err := row.Scan(
		&m.ID, &m.Name, &m.Phone, &m.Email, &m.PasswordHash, &m.Role,
		&m.CourierType, &m.VehicleType, &m.VehiclePlate, &m.OperatingCity,
		&m.IDCardNumber, &m.LicenseNumber, &m.PhotoURL, &m.Address, &m.IsAvailable,
		&m.WalletBalance, &m.EarningsBalance, &m.IsBlocked, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
