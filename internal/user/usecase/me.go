package usecase

import (
	"context"

	"desapega-api/internal/model"
	"desapega-api/internal/user"
	"desapega-api/internal/user/repository"
)

// Me returns the profile of the authenticated actor.
func (uc *implUseCase) Me(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Me.GetOneUser: %v", err)
		return user.UserOutput{}, err
	}
	if u.ID == 0 {
		return user.UserOutput{}, user.ErrUserNotFound
	}
	return user.UserOutput{User: u}, nil
}
