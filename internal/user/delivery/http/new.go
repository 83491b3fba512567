package http

import (
	"github.com/gin-gonic/gin"

	"desapega-api/internal/user"
	"desapega-api/pkg/log"
)

// Handler is the public interface for the user HTTP delivery layer.
type Handler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Me(c *gin.Context)
	ChangePassword(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for the user domain.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
