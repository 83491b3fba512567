package http

import (
	"errors"
	"net/http"

	"desapega-api/internal/user"
	pkgErrors "desapega-api/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Validation errors pass through untouched. Unknown errors stay unmapped and
// surface as an opaque 500.
func (h *handler) mapError(err error) error {
	var verr *pkgErrors.ValidationError
	if errors.As(err, &verr) {
		return err
	}

	switch err {
	case user.ErrEmailTaken:
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already registered")
	case user.ErrInvalidCredentials:
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case user.ErrUserNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	case user.ErrSamePassword:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "new password must differ from the current one")
	default:
		return err
	}
}
