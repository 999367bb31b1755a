package controllers

import (
	"github.com/pcadcreative/foodexpress/pkg/resp"
	"github.com/pcadcreative/foodexpress/services"
	"github.com/pcadcreative/foodexpress/utils"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct{ Svc *services.RecommendationService }

func NewRecommendationController(s *services.RecommendationService) *RecommendationController {
	return &RecommendationController{Svc: s}
}

// GET /api/recommendations
func (h *RecommendationController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	recs, cached, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(recs) == 0 {
		resp.OK(c, gin.H{
			"recommendations": recs,
			"message":         "No preferences found. Order more to get personalized recommendations!",
		})
		return
	}
	resp.OK(c, gin.H{"recommendations": recs, "cached": cached})
}
