package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// GET /reservations?page=&limit=[&status=][&date=]
func (rc *ReservationController) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	status := entity.ReservationStatus(c.Query("status"))
	date := c.Query("date")

	pageOut, err := rc.Reservations.List(c.Request.Context(), page, limit, status, date)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, pageOut)
}

// POST /reservations
func (rc *ReservationController) Create(c *gin.Context) {
	var rv entity.Reservation
	if err := c.ShouldBindJSON(&rv); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	created, err := rc.Reservations.Create(c.Request.Context(), &rv)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, created)
}

type reservationStatusReq struct {
	Status entity.ReservationStatus `json:"status" binding:"required"`
}

// PATCH /reservations/:id/status
func (rc *ReservationController) UpdateStatus(c *gin.Context) {
	var req reservationStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := rc.Reservations.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}

// DELETE /reservations/:id
func (rc *ReservationController) Delete(c *gin.Context) {
	if err := rc.Reservations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
