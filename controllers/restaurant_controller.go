package controllers

import (
	"github.com/ChPurna2003/CravingConnect/pkg/resp"
	"github.com/ChPurna2003/CravingConnect/services"
	"github.com/ChPurna2003/CravingConnect/utils"

	"github.com/gin-gonic/gin"
)

type RestaurantController struct{ Svc *services.RestaurantService }

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

// GET /api/restaurants?country=
func (rc *RestaurantController) List(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "Authentication required")
		return
	}

	out, err := rc.Svc.List(ident, c.Query("country"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
