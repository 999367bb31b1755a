package controllers

import (
	"strconv"

	"github.com/pcadcreative/foodexpress/entity"
	"github.com/pcadcreative/foodexpress/pkg/resp"
	"github.com/pcadcreative/foodexpress/services"
	"github.com/pcadcreative/foodexpress/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type createOrderReq struct {
	DeliveryAddress entity.DeliveryAddress `json:"deliveryAddress" binding:"required"`
	IdempotencyKey  string                 `json:"idempotencyKey"`
}

// POST /api/orders. A replay with a known idempotency key answers 200
// with the original order instead of creating a second one.
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, created, err := h.Svc.PlaceOrder(uid, req.DeliveryAddress, req.IdempotencyKey)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !created {
		resp.OK(c, order)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.GetForUser(uid, uint(id))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /api/orders?page=&limit=
func (h *OrderController) List(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	out, err := h.Svc.ListForUser(uid, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{
		"orders": out.Orders,
		"pagination": gin.H{
			"total": out.Total,
			"page":  out.Page,
			"pages": out.Pages,
		},
	})
}
