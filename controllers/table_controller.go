package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type TableController struct {
	Tables *services.TableService
}

func NewTableController(tables *services.TableService) *TableController {
	return &TableController{Tables: tables}
}

// GET /tables
func (tc *TableController) List(c *gin.Context) {
	tables, err := tc.Tables.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, tables)
}

// GET /tables/:id
func (tc *TableController) Get(c *gin.Context) {
	t, err := tc.Tables.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, t)
}

// POST /tables
func (tc *TableController) Create(c *gin.Context) {
	var t entity.Table
	if err := c.ShouldBindJSON(&t); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	created, err := tc.Tables.Create(c.Request.Context(), &t)
	if err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, created)
}

type tableStatusReq struct {
	Status entity.TableStatus `json:"status" binding:"required"`
}

// PATCH /tables/:id/status
func (tc *TableController) UpdateStatus(c *gin.Context) {
	var req tableStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := tc.Tables.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "status": req.Status})
}

// DELETE /tables/:id
func (tc *TableController) Delete(c *gin.Context) {
	if err := tc.Tables.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
