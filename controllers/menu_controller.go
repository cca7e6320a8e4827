package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /menu[?categoryId=]
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Menu.List(c.Request.Context(), c.Query("categoryId"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/categories
func (mc *MenuController) Categories(c *gin.Context) {
	cats, err := mc.Menu.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cats)
}

type availabilityReq struct {
	IsAvailable *bool `json:"isAvailable" binding:"required"`
}

// PATCH /menu/:id/availability
func (mc *MenuController) SetAvailability(c *gin.Context) {
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Menu.SetAvailability(c.Request.Context(), c.Param("id"), *req.IsAvailable); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "isAvailable": *req.IsAvailable})
}

type priceReq struct {
	Price float64 `json:"price" binding:"required"`
}

// PATCH /menu/:id/price
func (mc *MenuController) UpdatePrice(c *gin.Context) {
	var req priceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := mc.Menu.UpdatePrice(c.Request.Context(), c.Param("id"), req.Price); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "price": req.Price})
}
