package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type KitchenController struct {
	Kitchen *services.KitchenService
}

func NewKitchenController(kitchen *services.KitchenService) *KitchenController {
	return &KitchenController{Kitchen: kitchen}
}

// GET /kitchen/tickets
func (kc *KitchenController) Tickets(c *gin.Context) {
	tickets, err := kc.Kitchen.Tickets(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tickets)
}

// POST /kitchen/tickets/:id/items/:menuItemId/start
func (kc *KitchenController) StartItem(c *gin.Context) {
	if err := kc.Kitchen.StartItem(c.Request.Context(), c.Param("id"), c.Param("menuItemId")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ticketId": c.Param("id"), "menuItemId": c.Param("menuItemId"), "status": entity.ItemPreparing})
}

// POST /kitchen/tickets/:id/items/:menuItemId/ready
func (kc *KitchenController) ReadyItem(c *gin.Context) {
	if err := kc.Kitchen.ReadyItem(c.Request.Context(), c.Param("id"), c.Param("menuItemId")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ticketId": c.Param("id"), "menuItemId": c.Param("menuItemId"), "status": entity.ItemReady})
}

// POST /kitchen/tickets/:id/ready
func (kc *KitchenController) MarkAllReady(c *gin.Context) {
	order, err := kc.Kitchen.MarkAllReady(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, order)
}

type priorityReq struct {
	Priority entity.Priority `json:"priority" binding:"required"`
}

// PATCH /kitchen/tickets/:id/priority
func (kc *KitchenController) SetPriority(c *gin.Context) {
	var req priorityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := kc.Kitchen.SetPriority(c.Request.Context(), c.Param("id"), req.Priority); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"ticketId": c.Param("id"), "priority": req.Priority})
}

// GET /kitchen/stats
func (kc *KitchenController) Stats(c *gin.Context) {
	stats, err := kc.Kitchen.Stats(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, stats)
}
