package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Isaacjdv/futbolapp-backend/pkg/resp"
	"github.com/Isaacjdv/futbolapp-backend/services"
)

type ReferenceController struct{ Svc *services.ReferenceService }

func NewReferenceController(s *services.ReferenceService) *ReferenceController {
	return &ReferenceController{Svc: s}
}

// GET /api/reference-entities
func (h *ReferenceController) List(c *gin.Context) {
	entities, err := h.Svc.Entities(c.Request.Context())
	if err != nil {
		resp.Unavailable(c, "reference data unavailable")
		return
	}
	resp.OK(c, entities)
}
