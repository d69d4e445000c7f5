package controllers

import (
	"github.com/ChPurna2003/CravingConnect/pkg/resp"
	"github.com/ChPurna2003/CravingConnect/services"
	"github.com/ChPurna2003/CravingConnect/utils"

	"github.com/gin-gonic/gin"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(svc *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// GET /api/payment-methods?all=1
func (pc *PaymentController) List(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	out, err := pc.Svc.List(ident, c.Query("all") == "1")
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /api/payment-methods
func (pc *PaymentController) Add(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	var req services.AddPaymentMethodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	id, err := pc.Svc.Add(ident, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Added", "id": id})
}

// PUT /api/payment-methods
func (pc *PaymentController) Update(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	var req services.UpdatePaymentMethodIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := pc.Svc.Update(ident, &req); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "Updated", "id": req.ID})
}
