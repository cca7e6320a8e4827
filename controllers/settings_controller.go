package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type SettingsController struct {
	Settings *services.SettingsService
}

func NewSettingsController(settings *services.SettingsService) *SettingsController {
	return &SettingsController{Settings: settings}
}

// GET /settings
func (sc *SettingsController) Get(c *gin.Context) {
	p, err := sc.Settings.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, p)
}

// PATCH /settings
func (sc *SettingsController) Update(c *gin.Context) {
	var req services.UpdateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	updated, err := sc.Settings.Update(req)
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, updated)
}
