package controllers

import (
	"github.com/pcadcreative/foodexpress/pkg/resp"
	"github.com/pcadcreative/foodexpress/services"
	"github.com/pcadcreative/foodexpress/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

type addToCartReq struct {
	FoodItemID uint `json:"foodItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

// POST /api/cart/add
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req addToCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.AddItem(uid, req.FoodItemID, req.Quantity)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

type updateCartReq struct {
	FoodItemID uint `json:"foodItemId" binding:"required"`
	Quantity   *int `json:"quantity" binding:"required"`
}

// PUT /api/cart/update. Quantity 0 removes the line.
func (h *CartController) Update(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req updateCartReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	cart, err := h.Svc.SetItemQuantity(uid, req.FoodItemID, *req.Quantity)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, cart)
}

// GET /api/cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	cart, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/clear
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "cart cleared"})
}
