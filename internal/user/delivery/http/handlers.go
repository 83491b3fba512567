package http

import (
	"github.com/gin-gonic/gin"

	"desapega-api/internal/middleware"
	"desapega-api/pkg/response"
)

// Register godoc
// @Summary     Register a new account
// @Description Creates an account and returns the public profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Account data"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(output.User))
}

// Login godoc
// @Summary     Authenticate
// @Description Verifies credentials and returns an access token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newLoginResp(output))
}

// Me godoc
// @Summary     Current profile
// @Description Returns the profile of the authenticated user.
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newUserResp(output.User))
}

// ChangePassword godoc
// @Summary     Change password
// @Description Replaces the password after verifying the current one.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body changePasswordReq true "Password change"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     401 {object} response.Resp "Wrong current password"
// @Router      /api/v1/auth/password [PATCH]
func (h *handler) ChangePassword(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ChangePassword(ctx, sc, req.toInput()); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
