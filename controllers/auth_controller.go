package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginReq struct {
	Code string `json:"code" binding:"required"`
	Pin  string `json:"pin" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, w, err := ac.Auth.Login(req.Code, req.Pin)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"waiter": gin.H{
			"id":   w.ID,
			"code": w.Code,
			"name": w.Name,
			"role": w.Role,
		},
	})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	id, _ := c.Get("waiterId")
	waiterID, ok := id.(uint)
	if !ok {
		resp.Unauthorized(c, "invalid token")
		return
	}
	w, err := ac.Auth.Me(waiterID)
	if err != nil {
		resp.NotFound(c, "waiter not found")
		return
	}
	resp.OK(c, w)
}

// GET /auth/waiters
func (ac *AuthController) ListWaiters(c *gin.Context) {
	ws, err := ac.Auth.ListWaiters()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ws)
}
