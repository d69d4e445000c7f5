package routes

import (
	"github.com/ChPurna2003/CravingConnect/configs"
	"github.com/ChPurna2003/CravingConnect/controllers"
	"github.com/ChPurna2003/CravingConnect/middlewares"
	"github.com/ChPurna2003/CravingConnect/repository"
	"github.com/ChPurna2003/CravingConnect/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	payRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo, payRepo)
	paySvc := services.NewPaymentService(payRepo, userRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	payCtrl := controllers.NewPaymentController(paySvc)

	// Auth (public)
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.GET("/logout", middlewares.AuthMiddleware(cfg), authCtrl.Logout)

	// API (session required)
	api := r.Group("/api", middlewares.AuthMiddleware(cfg))
	{
		api.GET("/restaurants", restCtrl.List)

		api.POST("/cart/add", orderCtrl.AddToCart)
		api.POST("/checkout", orderCtrl.Checkout)
		api.POST("/order/:id/cancel", orderCtrl.Cancel)
		api.GET("/myorders", orderCtrl.MyOrders)

		api.GET("/payment-methods", payCtrl.List)
		api.POST("/payment-methods", payCtrl.Add)
		api.PUT("/payment-methods", payCtrl.Update)
	}
}
