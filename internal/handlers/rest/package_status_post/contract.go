//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_status_post_test
package package_status_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Accept(ctx context.Context, actor entities.Actor, id string) (*entities.Package, error)
	PickUp(ctx context.Context, actor entities.Actor, id string) (*entities.Package, error)
	Depart(ctx context.Context, actor entities.Actor, id string) (*entities.Package, error)
	Deliver(ctx context.Context, actor entities.Actor, id, signerName string) (*entities.Package, error)
	Cancel(ctx context.Context, actor entities.Actor, id, reason string) (*entities.Package, error)
}
