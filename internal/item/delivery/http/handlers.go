package http

import (
	"github.com/gin-gonic/gin"

	"desapega-api/internal/middleware"
	"desapega-api/internal/model"
	"desapega-api/pkg/response"
)

// Create godoc
// @Summary     Create a new listing
// @Description Creates a new item owned by the authenticated user.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/items [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// List godoc
// @Summary     List all items
// @Description Returns every listed item, newest first, with owner summaries.
// @Tags        Items
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/items [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get one item
// @Description Returns a single item by its ID with the owner summary.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Invalid ID"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := parseID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Update godoc
// @Summary     Update an item
// @Description Partially updates an item. Owner only; absent fields are untouched.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Illegal transition"
// @Router      /api/v1/items/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Delete godoc
// @Summary     Delete an item
// @Description Permanently removes an item. Owner only; no recovery.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} deleteResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/items/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := parseID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, deleteResp{Message: "item removed"})
}

// UpdateStatus godoc
// @Summary     Change item status
// @Description Moves the item to a new lifecycle status. Owner only; must be a legal transition.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path int             true "Item ID"
// @Param       body body updateStatusReq true "New status"
// @Success     200 {object} itemResp
// @Failure     400 {object} response.Resp "Invalid status value"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Illegal transition"
// @Router      /api/v1/items/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateStatusReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := parseID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.UpdateStatus(ctx, sc, id, model.ItemStatus(req.Status))
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Reserve godoc
// @Summary     Reserve an item
// @Description Holds an available item for the authenticated user. Owners cannot reserve their own items.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Not available or self-reservation"
// @Router      /api/v1/items/{id}/reserve [POST]
func (h *handler) Reserve(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := parseID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Reserve(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Reserve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}

// Buy godoc
// @Summary     Buy an item
// @Description Completes the exchange of an available or reserved item. Owners cannot buy their own items.
// @Tags        Items
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Not purchasable or self-purchase"
// @Router      /api/v1/items/{id}/buy [POST]
func (h *handler) Buy(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, err := parseID(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Buy(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Buy: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newItemResp(output.Item))
}
