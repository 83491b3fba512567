package model

// Scope is the authenticated actor extracted from a verified token.
// The Auth middleware places it in the request context; use cases receive
// it explicitly on every actor-bound operation.
type Scope struct {
	UserID  int64
	Email   string
	Profile string
}
