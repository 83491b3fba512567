package usecase

import (
	"context"

	"desapega-api/internal/model"
	"desapega-api/internal/user"
	"desapega-api/internal/user/repository"
)

// Register creates a new account with a hashed password. The email must be
// unique; a duplicate surfaces as ErrEmailTaken even under concurrent
// registration, via the unique index on users.email.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.UserOutput, error) {
	if err := validateRegisterInput(&input); err != nil {
		return user.UserOutput{}, err
	}

	existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: input.Email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register.GetOneUser: %v", err)
		return user.UserOutput{}, err
	}
	if existing.ID > 0 {
		return user.UserOutput{}, user.ErrEmailTaken
	}

	hash, err := uc.enc.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register.HashPassword: %v", err)
		return user.UserOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Profile:      model.ProfileUser,
	})
	if err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// index is the source of truth.
		if err == repository.ErrDuplicateEmail {
			return user.UserOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "user.usecase.Register.CreateUser: %v", err)
		return user.UserOutput{}, err
	}

	return user.UserOutput{User: created}, nil
}
