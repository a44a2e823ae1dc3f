package notification

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/notification"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, n entities.Notification) (*entities.Notification, error) {
	query := `INSERT INTO notifications (id, user_id, title, message, is_read, related_package_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.querier.Exec(ctx, query,
		n.ID,
		n.UserID,
		n.Title,
		n.Message,
		n.IsRead,
		n.RelatedPackageID,
		n.Timestamp,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, fmt.Errorf("%w: unknown user %s", notification.ErrInvalidUserID, n.UserID)
		}
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return &n, nil
}

func (r *Repository) ListByUser(ctx context.Context, userID string, limit uint64) ([]entities.Notification, error) {
	query := `SELECT id, user_id, title, message, is_read, related_package_id, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	defer rows.Close()

	result := make([]entities.Notification, 0, 16)
	for rows.Next() {
		var n entities.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &n.RelatedPackageID, &n.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
		}
		result = append(result, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected notification repository list error: %w", err)
	}
	return result, nil
}

// MarkRead does not filter on is_read, so repeating it still finds the row.
func (r *Repository) MarkRead(ctx context.Context, userID, id string) error {
	tag, err := r.querier.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("unexpected notification repository mark read error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return notification.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.querier.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT is_read`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository count error: %w", err)
	}
	return count, nil
}
