package response

// Envelope messages and codes.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
	ValidationErrorCode     = 400
)

// Format used by the DateTime marshaler.
const DateTimeFormat = "2006-01-02 15:04:05"
