package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

type NotificationController struct {
	Notifications *services.NotificationService
}

func NewNotificationController(notifications *services.NotificationService) *NotificationController {
	return &NotificationController{Notifications: notifications}
}

// GET /notifications
func (nc *NotificationController) List(c *gin.Context) {
	ns, err := nc.Notifications.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, ns)
}

// GET /notifications/unread-count
func (nc *NotificationController) UnreadCount(c *gin.Context) {
	count, err := nc.Notifications.UnreadCount(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"count": count})
}

// POST /notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	if err := nc.Notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"id": c.Param("id"), "read": true})
}

// POST /notifications/read-all
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	n, err := nc.Notifications.MarkAllRead(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"marked": n})
}

// DELETE /notifications/:id
func (nc *NotificationController) Delete(c *gin.Context) {
	if err := nc.Notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
