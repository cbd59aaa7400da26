package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Isaacjdv/futbolapp-backend/pkg/resp"
	"github.com/Isaacjdv/futbolapp-backend/repository"
	"github.com/Isaacjdv/futbolapp-backend/services"
)

type CatalogController struct {
	Svc      *services.CatalogService
	Products *repository.ProductRepository
}

func NewCatalogController(svc *services.CatalogService, products *repository.ProductRepository) *CatalogController {
	return &CatalogController{Svc: svc, Products: products}
}

// GET /api/products always answers 200 and never empty (fallback data covers
// upstream failures).
func (h *CatalogController) List(c *gin.Context) {
	resp.OK(c, h.Svc.Products(c.Request.Context()))
}

// GET /api/products/export streams an xlsx dump of the locally stored jerseys.
func (h *CatalogController) Export(c *gin.Context) {
	products, err := h.Products.All()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	headerRow := sheet.AddRow()
	for _, head := range []string{"ID", "Name", "Description", "Price", "Stock", "Team", "Image", "CreatedAt"} {
		headerRow.AddCell().SetValue(head)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Name)
		row.AddCell().SetValue(p.Description)
		row.AddCell().SetValue(p.Price)
		row.AddCell().SetValue(p.Stock)
		if p.Team != nil {
			row.AddCell().SetValue(p.Team.Name)
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(p.Image)
		row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=products.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
	}
}
