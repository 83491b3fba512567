package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"desapega-api/internal/middleware"
	userHTTP "desapega-api/internal/user/delivery/http"
	userRepo "desapega-api/internal/user/repository/postgre"
	userUC "desapega-api/internal/user/usecase"
)

// setupUserDomain initializes the user/auth domain and registers its routes.
func (srv *HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. Repository
	repo := userRepo.New(srv.postgresDB, srv.l)

	// 2. UseCase
	uc := userUC.New(repo, srv.encrypter, srv.jwtManager, srv.l)

	// 3. HTTP Handler
	h := userHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/auth
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
	return nil
}
