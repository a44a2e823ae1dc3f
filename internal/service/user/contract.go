//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, user entities.User) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	List(ctx context.Context, role *entities.UserRole) ([]entities.User, error)
	Update(ctx context.Context, modify entities.UserModify) (*entities.User, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(actor entities.Actor) (string, time.Time, error)
}

type IDGenerator interface {
	NewID() string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
