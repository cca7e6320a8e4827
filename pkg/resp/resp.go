package resp

import (
	"errors"
	"net/http"

	"github.com/asliq/akilli-garson/pkg/rest"
	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}
func Conflict(c *gin.Context, msg string) {
	c.JSON(http.StatusConflict, gin.H{"ok": false, "error": msg})
}
func ServerError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

// Error maps the engine's error taxonomy onto HTTP statuses. Mutation
// failures reach the UI as retryable errors; the optimistic rollback already
// happened by the time this runs.
func Error(c *gin.Context, err error) {
	var nf *rest.NotFoundError
	var srv *rest.ServerError
	var net *rest.NetworkError
	switch {
	case errors.As(err, &nf):
		NotFound(c, err.Error())
	case errors.As(err, &net):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error(), "retryable": true})
	case errors.As(err, &srv):
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": err.Error(), "retryable": true})
	default:
		ServerError(c, err)
	}
}
