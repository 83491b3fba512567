package user

import (
	"context"

	"desapega-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (UserOutput, error)
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Me(ctx context.Context, sc model.Scope) (UserOutput, error)
	ChangePassword(ctx context.Context, sc model.Scope, input ChangePasswordInput) error
}
