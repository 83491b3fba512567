package usecase

import (
	"net/mail"
	"strings"
	"unicode/utf8"

	"desapega-api/internal/user"
	pkgErrors "desapega-api/pkg/errors"
)

// Field rule bounds, counted in characters, not bytes.
const (
	minNameLen     = 3
	minPasswordLen = 6
)

// validateRegisterInput checks every registration rule at once, trimming and
// normalizing fields in place. All violations are reported together.
func validateRegisterInput(input *user.RegisterInput) error {
	verr := pkgErrors.NewValidationError()

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if utf8.RuneCountInString(input.Name) < minNameLen {
		verr.Add("name", "must be at least 3 characters")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		verr.Add("email", "must be a valid email address")
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLen {
		verr.Add("password", "must be at least 6 characters")
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}

// validateChangePasswordInput checks the new password rules. The current
// password is verified against the stored hash, not here.
func validateChangePasswordInput(input user.ChangePasswordInput) error {
	verr := pkgErrors.NewValidationError()

	if input.CurrentPassword == "" {
		verr.Add("currentPassword", "is required")
	}
	if utf8.RuneCountInString(input.NewPassword) < minPasswordLen {
		verr.Add("newPassword", "must be at least 6 characters")
	}

	if verr.HasViolations() {
		return verr
	}
	return nil
}
