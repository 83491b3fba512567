package usecase_test

import (
	"context"
	"errors"
	"testing"

	"desapega-api/internal/model"
	"desapega-api/internal/user"
	pkgErrors "desapega-api/pkg/errors"
)

func TestMe(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	seeded := repo.seed(model.User{Name: "Maria", Email: "maria@example.com"})
	uc := newUserUseCase(repo)

	out, err := uc.Me(ctx, model.Scope{UserID: seeded.ID})
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if out.User.ID != seeded.ID || out.User.Email != "maria@example.com" {
		t.Errorf("unexpected user: %+v", out.User)
	}
}

func TestMeNotFound(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(newMockUserRepo())

	_, err := uc.Me(ctx, model.Scope{UserID: 404})
	if !errors.Is(err, user.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	seeded := repo.seed(model.User{Email: "maria@example.com", PasswordHash: "hash:antiga1"})
	uc := newUserUseCase(repo)

	err := uc.ChangePassword(ctx, model.Scope{UserID: seeded.ID}, user.ChangePasswordInput{
		CurrentPassword: "antiga1",
		NewPassword:     "nova-senha",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}
	if got := repo.users[seeded.ID].PasswordHash; got != "hash:nova-senha" {
		t.Errorf("expected updated hash, got %q", got)
	}
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	seeded := repo.seed(model.User{Email: "maria@example.com", PasswordHash: "hash:antiga1"})
	uc := newUserUseCase(repo)

	err := uc.ChangePassword(ctx, model.Scope{UserID: seeded.ID}, user.ChangePasswordInput{
		CurrentPassword: "errada",
		NewPassword:     "nova-senha",
	})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if got := repo.users[seeded.ID].PasswordHash; got != "hash:antiga1" {
		t.Errorf("hash changed on failed attempt: %q", got)
	}
}

func TestChangePasswordSameAsCurrent(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	seeded := repo.seed(model.User{Email: "maria@example.com", PasswordHash: "hash:antiga1"})
	uc := newUserUseCase(repo)

	err := uc.ChangePassword(ctx, model.Scope{UserID: seeded.ID}, user.ChangePasswordInput{
		CurrentPassword: "antiga1",
		NewPassword:     "antiga1",
	})
	if !errors.Is(err, user.ErrSamePassword) {
		t.Fatalf("expected ErrSamePassword, got %v", err)
	}
}

func TestChangePasswordValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUserUseCase(newMockUserRepo())

	err := uc.ChangePassword(ctx, model.Scope{UserID: 1}, user.ChangePasswordInput{
		NewPassword: "123",
	})

	var verr *pkgErrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	hasViolation(t, err, "currentPassword")
	hasViolation(t, err, "newPassword")
}
