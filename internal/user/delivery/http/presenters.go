package http

import (
	"desapega-api/internal/model"
	"desapega-api/internal/user"
	"desapega-api/pkg/response"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (r changePasswordReq) toInput() user.ChangePasswordInput {
	return user.ChangePasswordInput{
		CurrentPassword: r.CurrentPassword,
		NewPassword:     r.NewPassword,
	}
}

// --- Response DTOs ---

// userResp never carries the password hash.
type userResp struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Profile   string            `json:"profile"`
	CreatedAt response.DateTime `json:"createdAt"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Profile:   u.Profile,
		CreatedAt: response.DateTime(u.CreatedAt),
	}
}

type loginResp struct {
	User  userResp `json:"user"`
	Token string   `json:"token"`
}

func newLoginResp(out user.LoginOutput) loginResp {
	return loginResp{
		User:  newUserResp(out.User),
		Token: out.Token,
	}
}
