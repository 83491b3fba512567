package usecase

import (
	"context"

	"desapega-api/internal/model"
	"desapega-api/internal/user"
	"desapega-api/internal/user/repository"
)

// ChangePassword replaces the actor's password after verifying the current
// one. The new password must differ from the old.
func (uc *implUseCase) ChangePassword(ctx context.Context, sc model.Scope, input user.ChangePasswordInput) error {
	if err := validateChangePasswordInput(input); err != nil {
		return err
	}

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ChangePassword.GetOneUser: %v", err)
		return err
	}
	if u.ID == 0 {
		return user.ErrUserNotFound
	}

	if err := uc.enc.ComparePassword(u.PasswordHash, input.CurrentPassword); err != nil {
		return user.ErrInvalidCredentials
	}
	if input.NewPassword == input.CurrentPassword {
		return user.ErrSamePassword
	}

	hash, err := uc.enc.HashPassword(input.NewPassword)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.ChangePassword.HashPassword: %v", err)
		return err
	}

	if err := uc.repo.UpdateUserPassword(ctx, u.ID, hash); err != nil {
		uc.l.Errorf(ctx, "user.usecase.ChangePassword.UpdateUserPassword: %v", err)
		return err
	}
	return nil
}
