package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Isaacjdv/futbolapp-backend/pkg/resp"
	"github.com/Isaacjdv/futbolapp-backend/services"
	"github.com/Isaacjdv/futbolapp-backend/utils"
)

type SaveItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type SavedItemController struct{ Svc *services.SavedItemService }

func NewSavedItemController(s *services.SavedItemService) *SavedItemController {
	return &SavedItemController{Svc: s}
}

// GET /api/saved-items
func (h *SavedItemController) List(c *gin.Context) {
	items, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/saved-items
// 201 on a new save, 200 with alreadySaved on the idempotent repeat.
func (h *SavedItemController) Save(c *gin.Context) {
	var req SaveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, created, err := h.Svc.Save(utils.CurrentUserID(c), req.ProductID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	if created {
		resp.Created(c, item)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "alreadySaved": true, "data": item})
}

// DELETE /api/saved-items/:id
func (h *SavedItemController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := h.Svc.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "saved item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
