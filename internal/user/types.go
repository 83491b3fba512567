package user

import "desapega-api/internal/model"

// --- UseCase Inputs ---

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- UseCase Outputs ---

type UserOutput struct {
	User model.User
}

type LoginOutput struct {
	User  model.User
	Token string
}
