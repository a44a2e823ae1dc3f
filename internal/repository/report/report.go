package report

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountUsers(ctx context.Context) (int64, int64, error) {
	var total, couriers int64
	err := r.querier.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE role = 'COURIER') FROM users`,
	).Scan(&total, &couriers)
	if err != nil {
		return 0, 0, fmt.Errorf("unexpected report repository count users error: %w", err)
	}
	return total, couriers, nil
}

func (r *Repository) CountPackagesByStatus(ctx context.Context) (map[entities.PackageStatus]int64, error) {
	rows, err := r.querier.Query(ctx, `SELECT status, COUNT(*) FROM packages GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository count packages error: %w", err)
	}
	defer rows.Close()

	result := make(map[entities.PackageStatus]int64)
	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected report repository count packages error: %w", err)
		}
		result[entities.PackageStatus(status)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected report repository count packages error: %w", err)
	}
	return result, nil
}

func (r *Repository) Revenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.querier.QueryRow(ctx, `SELECT COALESCE(SUM(commission), 0) FROM settlements`).Scan(&revenue)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository revenue error: %w", err)
	}
	return revenue, nil
}
