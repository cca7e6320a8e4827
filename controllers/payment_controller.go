package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// GET /payments[?orderId=]
func (pc *PaymentController) List(c *gin.Context) {
	ctx := c.Request.Context()
	if orderID := c.Query("orderId"); orderID != "" {
		ps, err := pc.Payments.ListByOrder(ctx, orderID)
		if err != nil {
			fail(c, err)
			return
		}
		resp.OK(c, ps)
		return
	}

	ps, err := pc.Payments.List(ctx)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ps)
}

// POST /payments
func (pc *PaymentController) Process(c *gin.Context) {
	var req services.ProcessPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	created, err := pc.Payments.Process(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, created)
}

type refundReq struct {
	Amount float64 `json:"amount" binding:"required"`
}

// POST /payments/:id/refund
func (pc *PaymentController) Refund(c *gin.Context) {
	var req refundReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := pc.Payments.Refund(c.Request.Context(), c.Param("id"), req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}
