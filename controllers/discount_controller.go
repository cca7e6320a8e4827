package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type DiscountController struct {
	Discounts *services.DiscountService
}

func NewDiscountController(discounts *services.DiscountService) *DiscountController {
	return &DiscountController{Discounts: discounts}
}

// GET /discounts
func (dc *DiscountController) List(c *gin.Context) {
	ds, err := dc.Discounts.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ds)
}

// GET /discounts/code/:code
func (dc *DiscountController) GetByCode(c *gin.Context) {
	d, err := dc.Discounts.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, d)
}

// POST /discounts
func (dc *DiscountController) Create(c *gin.Context) {
	var d entity.Discount
	if err := c.ShouldBindJSON(&d); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	created, err := dc.Discounts.Create(c.Request.Context(), &d)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, created)
}

// PATCH /discounts/:id
func (dc *DiscountController) Update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := dc.Discounts.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /discounts/:id
func (dc *DiscountController) Delete(c *gin.Context) {
	if err := dc.Discounts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
