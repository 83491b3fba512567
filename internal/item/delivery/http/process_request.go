package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"desapega-api/internal/item"
)

// parseID converts the :id path param into a positive integer identifier.
// Fractional or non-numeric strings are rejected.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, item.ErrInvalidID
	}
	return id, nil
}

// processCreateReq binds the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update item request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := parseID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}

// processUpdateStatusReq binds the status change request body.
func (h *handler) processUpdateStatusReq(c *gin.Context) (updateStatusReq, error) {
	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
