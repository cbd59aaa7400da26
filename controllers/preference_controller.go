package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Isaacjdv/futbolapp-backend/pkg/resp"
	"github.com/Isaacjdv/futbolapp-backend/services"
	"github.com/Isaacjdv/futbolapp-backend/utils"
)

type SetPreferenceRequest struct {
	Name    string `json:"name" binding:"required"`
	Logo    string `json:"logo" binding:"required"`
	TeamRef string `json:"teamRef"`
}

type PreferenceController struct{ Svc *services.PreferenceService }

func NewPreferenceController(s *services.PreferenceService) *PreferenceController {
	return &PreferenceController{Svc: s}
}

// GET /api/preference returns null data until the user picks a favorite.
func (h *PreferenceController) Get(c *gin.Context) {
	pref, err := h.Svc.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, pref)
}

// POST /api/preference
func (h *PreferenceController) Set(c *gin.Context) {
	var req SetPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pref, err := h.Svc.Set(utils.CurrentUserID(c), req.Name, req.Logo, req.TeamRef)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, pref)
}
