package usecase

import (
	"context"
	"strings"

	"desapega-api/internal/user"
	"desapega-api/internal/user/repository"
)

// Login verifies credentials and issues an access token. Unknown email and
// wrong password both map to ErrInvalidCredentials so the response does not
// reveal which accounts exist.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.GetOneUser: %v", err)
		return user.LoginOutput{}, err
	}
	if u.ID == 0 {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	if err := uc.enc.ComparePassword(u.PasswordHash, input.Password); err != nil {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.jwt.Issue(u.ID, u.Email, u.Profile)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Login.Issue: %v", err)
		return user.LoginOutput{}, err
	}

	return user.LoginOutput{User: u, Token: token}, nil
}
