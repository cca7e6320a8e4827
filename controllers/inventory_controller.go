package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type InventoryController struct {
	Inventory *services.InventoryService
}

func NewInventoryController(inventory *services.InventoryService) *InventoryController {
	return &InventoryController{Inventory: inventory}
}

// GET /inventory[?low=true]
func (ic *InventoryController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if c.Query("low") == "true" {
		items, err := ic.Inventory.ListLow(ctx)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, items)
		return
	}

	items, err := ic.Inventory.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

type adjustReq struct {
	Delta float64 `json:"delta" binding:"required"`
}

// POST /inventory/:id/adjust
func (ic *InventoryController) Adjust(c *gin.Context) {
	var req adjustReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := ic.Inventory.Adjust(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}
