package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
)

const listLimit = 100

type Service struct {
	repository Repository
	changes    ChangePublisher
	ids        IDGenerator
}

func New(repository Repository, changes ChangePublisher, ids IDGenerator) *Service {
	return &Service{
		repository: repository,
		changes:    changes,
		ids:        ids,
	}
}

func (s *Service) Notify(ctx context.Context, n entities.Notification) (*entities.Notification, error) {
	if strings.TrimSpace(n.UserID) == "" {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(n.Title) == "" {
		return nil, ErrMissingTitle
	}

	n.ID = s.ids.NewID()
	n.IsRead = false
	n.Timestamp = time.Now().UTC()

	created, err := s.repository.Create(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.changes.Publish(entities.ChangeSignal{
		Type:      entities.ChangeNotification,
		UserIDs:   []string{created.UserID},
		PackageID: derefOrEmpty(created.RelatedPackageID),
		Timestamp: created.Timestamp,
	})
	return created, nil
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]entities.Notification, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrInvalidUserID
	}

	list, err := s.repository.ListByUser(ctx, userID, listLimit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

// MarkRead may be called any number of times for the same notification.
func (s *Service) MarkRead(ctx context.Context, userID, id string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidUserID
	}
	if strings.TrimSpace(id) == "" {
		return ErrInvalidNotificationID
	}

	if err := s.repository.MarkRead(ctx, userID, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int64, error) {
	if strings.TrimSpace(userID) == "" {
		return 0, ErrInvalidUserID
	}

	count, err := s.repository.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
