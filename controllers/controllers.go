package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/asliq/akilli-garson/pkg/resp"
	"github.com/asliq/akilli-garson/services"
)

// fail maps service errors onto HTTP before falling back to the transport
// taxonomy. Lifecycle violations are conflicts; validation failures never
// reached the network and are plain bad requests.
func fail(c *gin.Context, err error) {
	var inv *services.InvalidStateError
	var val *services.ValidationError
	switch {
	case errors.As(err, &inv):
		resp.Conflict(c, err.Error())
	case errors.As(err, &val):
		resp.BadRequest(c, err.Error())
	default:
		resp.Error(c, err)
	}
}
