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

type SaveDishRequest struct {
	Country string `json:"country" binding:"required"`
	Dish    string `json:"dish" binding:"required"`
	Image   string `json:"image"`
}

type SavedDishController struct{ Svc *services.SavedDishService }

func NewSavedDishController(s *services.SavedDishService) *SavedDishController {
	return &SavedDishController{Svc: s}
}

// GET /api/saved-dishes
func (h *SavedDishController) List(c *gin.Context) {
	dishes, err := h.Svc.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, dishes)
}

// POST /api/saved-dishes
func (h *SavedDishController) Save(c *gin.Context) {
	var req SaveDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	dish, created, err := h.Svc.Save(utils.CurrentUserID(c), req.Country, req.Dish, req.Image)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	if created {
		resp.Created(c, dish)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "alreadySaved": true, "data": dish})
}

// DELETE /api/saved-dishes/:id
func (h *SavedDishController) Remove(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	if err := h.Svc.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "saved dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
