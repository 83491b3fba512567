package http

import (
	"errors"
	"net/http"

	"desapega-api/internal/item"
	"desapega-api/internal/model"
	pkgErrors "desapega-api/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
// Validation errors pass through untouched so the response layer can render
// the full violation list. Unknown errors stay unmapped and surface as an
// opaque 500.
func (h *handler) mapError(err error) error {
	var verr *pkgErrors.ValidationError
	if errors.As(err, &verr) {
		return err
	}

	var terr *model.InvalidTransitionError
	if errors.As(err, &terr) {
		return pkgErrors.NewHTTPError(http.StatusConflict, terr.Error())
	}

	switch err {
	case item.ErrItemNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	case item.ErrForbidden:
		return pkgErrors.NewHTTPError(http.StatusForbidden, "only the owner may perform this action")
	case item.ErrInvalidID:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "id must be a positive integer")
	case item.ErrInvalidStatus:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "status must be one of DISPONIVEL, RESERVADO, DOADO_VENDIDO")
	case item.ErrItemNotAvailable:
		return pkgErrors.NewHTTPError(http.StatusConflict, "item is not available for reservation")
	case item.ErrItemNotPurchasable:
		return pkgErrors.NewHTTPError(http.StatusConflict, "item can no longer be purchased")
	case item.ErrSelfReserve:
		return pkgErrors.NewHTTPError(http.StatusConflict, "you cannot reserve your own item")
	case item.ErrSelfPurchase:
		return pkgErrors.NewHTTPError(http.StatusConflict, "you cannot buy your own item")
	case item.ErrStatusConflict:
		return pkgErrors.NewHTTPError(http.StatusConflict, "item changed concurrently, retry")
	default:
		return err
	}
}
