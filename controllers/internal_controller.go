package controllers

import (
	"github.com/pcadcreative/foodexpress/pkg/resp"
	"github.com/pcadcreative/foodexpress/services"

	"github.com/gin-gonic/gin"
)

// InternalController is the service-to-service surface, reachable only
// with the shared internal secret.
type InternalController struct{ Svc *services.RecommendationService }

func NewInternalController(s *services.RecommendationService) *InternalController {
	return &InternalController{Svc: s}
}

type preferenceUpdateReq struct {
	UserID       uint     `json:"userId" binding:"required"`
	RestaurantID uint     `json:"restaurantId" binding:"required"`
	OrderedItems []string `json:"orderedItems" binding:"required"`
}

// POST /internal/recommendation/update
func (h *InternalController) UpdatePreferences(c *gin.Context) {
	var req preferenceUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RecordOrder(req.UserID, req.RestaurantID, req.OrderedItems); err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "recommendation data updated"})
}
