package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

// GET /orders[?tableId=][?status=]
func (oc *OrderController) List(c *gin.Context) {
	ctx := c.Request.Context()

	if tableID := c.Query("tableId"); tableID != "" {
		orders, err := oc.Orders.ListByTable(ctx, tableID)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, orders)
		return
	}
	if status := c.Query("status"); status != "" {
		orders, err := oc.Orders.ListByStatus(ctx, entity.OrderStatus(status))
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, orders)
		return
	}

	orders, err := oc.Orders.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (oc *OrderController) Get(c *gin.Context) {
	o, err := oc.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, o)
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	created, err := oc.Orders.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, created)
}

type orderStatusReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	var req orderStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := oc.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}

// POST /orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	updated, err := oc.Orders.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}

// POST /orders/:id/items
func (oc *OrderController) AddItem(c *gin.Context) {
	var in services.OrderItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := oc.Orders.AddItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /orders/:id/items/:menuItemId
func (oc *OrderController) RemoveItem(c *gin.Context) {
	updated, err := oc.Orders.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("menuItemId"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	if err := oc.Orders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
