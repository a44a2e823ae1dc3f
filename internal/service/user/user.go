package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
)

type Service struct {
	repository Repository
	hasher     PasswordHasher
	tokens     TokenIssuer
	ids        IDGenerator
	txManager  TxManager
}

func New(repository Repository, hasher PasswordHasher, tokens TokenIssuer, ids IDGenerator, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		hasher:     hasher,
		tokens:     tokens,
		ids:        ids,
		txManager:  txManager,
	}
}

// Register creates a sender or courier account. Couriers start with empty balances
// and must recharge their deposit before accepting jobs.
func (s *Service) Register(ctx context.Context, reg entities.Registration) (*entities.User, error) {
	reg.Phone = normalizePhone(reg.Phone)
	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := entities.User{
		ID:           s.ids.NewID(),
		Name:         strings.TrimSpace(reg.Name),
		Phone:        reg.Phone,
		Email:        reg.Email,
		PasswordHash: hash,
		Role:         reg.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if reg.Role == entities.RoleCourier {
		details := *reg.Courier
		details.OperatingCity = strings.TrimSpace(details.OperatingCity)
		details.IsAvailable = true
		u.Courier = &details
	}

	created, err := s.repository.Create(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *Service) Login(ctx context.Context, phone, password string) (*entities.Session, error) {
	phone = normalizePhone(phone)
	if phone == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repository.GetByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user by phone: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	if u.IsBlocked {
		return nil, ErrUserBlocked
	}

	token, expiresAt, err := s.tokens.Issue(entities.Actor{UserID: u.ID, Role: u.Role})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &entities.Session{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *u,
	}, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidUserID
	}

	u, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context, actor entities.Actor, role *entities.UserRole) ([]entities.User, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	users, err := s.repository.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// SetBlocked is an admin action. A blocked user can no longer log in; tokens
// already issued are rejected by the auth middleware on the next request.
func (s *Service) SetBlocked(ctx context.Context, actor entities.Actor, id string, blocked bool) (*entities.User, error) {
	if !actor.IsAdmin() || actor.UserID == id {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidUserID
	}

	u, err := s.repository.Update(ctx, entities.UserModify{ID: &id, IsBlocked: &blocked})
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

func (s *Service) SetAvailability(ctx context.Context, actor entities.Actor, id string, available bool) (*entities.User, error) {
	if actor.UserID != id || actor.Role != entities.RoleCourier {
		return nil, ErrForbidden
	}

	var updated *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if current.Role != entities.RoleCourier {
			return ErrNotCourier
		}

		updated, err = s.repository.Update(ctx, entities.UserModify{ID: &id, IsAvailable: &available})
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// EnsureAdmin seeds the administrator account on startup if it does not exist yet.
func (s *Service) EnsureAdmin(ctx context.Context, phone, password string) (*entities.User, error) {
	phone = normalizePhone(phone)
	if phone == "" || len(password) < minPasswordLength {
		return nil, ErrMissingRequiredFields
	}

	existing, err := s.repository.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		if existing.Role != entities.RoleAdmin {
			return nil, fmt.Errorf("%w: phone %s belongs to a %s", ErrConflict, phone, existing.Role)
		}
		return existing, nil
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("get admin: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	admin, err := s.repository.Create(ctx, entities.User{
		ID:           s.ids.NewID(),
		Name:         "Administrator",
		Phone:        phone,
		PasswordHash: hash,
		Role:         entities.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}
