//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, notification entities.Notification) (*entities.Notification, error)
	// ListByUser returns newest first.
	ListByUser(ctx context.Context, userID string, limit uint64) ([]entities.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	CountUnread(ctx context.Context, userID string) (int64, error)
}

type ChangePublisher interface {
	Publish(signal entities.ChangeSignal)
}

type IDGenerator interface {
	NewID() string
}
