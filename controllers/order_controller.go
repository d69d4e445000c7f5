package controllers

import (
	"strconv"

	"github.com/ChPurna2003/CravingConnect/pkg/apperr"
	"github.com/ChPurna2003/CravingConnect/pkg/resp"
	"github.com/ChPurna2003/CravingConnect/services"
	"github.com/ChPurna2003/CravingConnect/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// POST /api/cart/add
func (oc *OrderController) AddToCart(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orderID, err := oc.Svc.AddToCart(ident, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Added", "order_id": orderID})
}

// POST /api/checkout
func (oc *OrderController) Checkout(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.Svc.Checkout(ident, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Order placed", "order_id": req.OrderID})
}

// POST /api/order/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.Error(c, apperr.NotFound("order"))
		return
	}

	msg, err := oc.Svc.Cancel(ident, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": msg})
}

// GET /api/myorders?all=1
func (oc *OrderController) MyOrders(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	out, err := oc.Svc.MyOrders(ident, c.Query("all") == "1")
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
