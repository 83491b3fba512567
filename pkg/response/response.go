package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	pkgErrors "desapega-api/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error classifies err and sends the matching JSON error response.
// Known shapes: *pkgErrors.HTTPError (status taken from the error),
// *pkgErrors.ValidationError and validator.ValidationErrors (400 carrying
// the full field-violation list), and JSON decode failures from request
// binding (400). Anything else is an opaque 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErr *pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   "Validation failed",
			Errors:    validationErr.Violations,
		})
		return
	}

	var bindingErrs validator.ValidationErrors
	if errors.As(err, &bindingErrs) {
		violations := make([]pkgErrors.FieldViolation, 0, len(bindingErrs))
		for _, fe := range bindingErrs {
			violations = append(violations, pkgErrors.FieldViolation{
				Field:   fe.Field(),
				Message: "failed on rule: " + fe.Tag(),
			})
		}
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   "Validation failed",
			Errors:    violations,
		})
		return
	}

	if isJSONDecodeError(err) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: ValidationErrorCode,
			Message:   "Invalid request body",
		})
		return
	}

	InternalError(c, err)
}

// isJSONDecodeError reports whether err came from decoding a malformed or
// mistyped request body. These are client faults, never internal errors.
func isJSONDecodeError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: ValidationErrorCode,
		Message:   err.Error(),
	})
}

// InternalError sends 500 with the default opaque message. The original
// error is never serialized to the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}
