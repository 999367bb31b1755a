package controllers

import (
	"errors"

	"github.com/pcadcreative/foodexpress/pkg/resp"
	"github.com/pcadcreative/foodexpress/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// mapServiceError translates the service error kinds to HTTP. Anything
// unrecognized is a storage failure and becomes a 500.
func mapServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrRestaurantConflict):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrUnavailable):
		resp.Unprocessable(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
