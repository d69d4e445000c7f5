package controllers

import (
	"net/http"

	"github.com/ChPurna2003/CravingConnect/pkg/resp"
	"github.com/ChPurna2003/CravingConnect/services"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" form:"username" binding:"required,min=3"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// POST /login — accepts JSON or form fields. The token is returned in the
// body and mirrored into a cookie for browser flows.
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.Svc.Login(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	c.SetCookie("token", token, int(a.Svc.JWTTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id": user.ID, "username": user.Username,
			"role": user.Role, "country": user.Country,
		},
	})
}

// GET /logout
func (a *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"message": "Logged out"})
}

// POST /register — always creates a customer account.
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Username, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}

	resp.Created(c, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}
