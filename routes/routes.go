package routes

import (
	"net/http"

	"evdealer/handlers"
	"evdealer/models"
	"evdealer/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Setup 掛上全域中介層、/metrics 與 /api 路由組
// Metrics 必須在 Recovery 外層，panic 轉成的 500 才會被記錄
func Setup(r *gin.Engine, h *handlers.Handler, tokens *utils.TokenIssuer) {
	r.Use(Metrics(), gin.Recovery())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		Path(api, h, tokens)
	}
}

// Path 註冊所有 API 路由
func Path(r *gin.RouterGroup, h *handlers.Handler, tokens *utils.TokenIssuer) {
	r.GET("/ping", func(c *gin.Context) {
		handlers.SuccessResponse(c, http.StatusOK, "pong", nil)
	})

	auth := AuthMiddleware(tokens)
	adminOnly := RoleMiddleware(models.RoleAdmin)
	staff := RoleMiddleware(models.RoleSales)

	r.POST("/auth/login", h.Login)
	r.GET("/auth/me", auth, h.Me)

	// 目錄公開
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", h.ListVehicles)
		vehicles.GET("/:id", h.GetVehicle)
		vehicles.POST("", auth, adminOnly, h.CreateVehicle)
		vehicles.PUT("/:id", auth, adminOnly, h.UpdateVehicle)
	}

	compare := r.Group("/compare")
	{
		compare.POST("", h.CreateCompareSession)
		compare.GET("/:sessionId", h.GetCompareSession)
		compare.POST("/:sessionId/vehicles/:vehicleId", h.ToggleCompareVehicle)
		compare.DELETE("/:sessionId", h.ClearCompareSession)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("/test-drive", h.SubmitTestDrive)
		bookings.POST("/deposit", h.SubmitDeposit)
		bookings.GET("/:kind", auth, adminOnly, h.ListBookings)
	}

	customers := r.Group("/customers", auth, staff)
	{
		customers.GET("", h.ListCustomers)
		customers.GET("/yourself", h.ListMyCustomers)
		customers.GET("/export", h.ExportCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.GET("/:id/payments", h.GetCustomerPayments)
		customers.POST("", h.CreateCustomer)
		customers.PUT("/:id", h.UpdateCustomer)
	}

	orders := r.Group("/orders", auth, staff)
	{
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.POST("", h.CreateOrder)
		orders.PUT("/:id", h.UpdateOrder)
	}

	dealers := r.Group("/dealers")
	{
		dealers.GET("", h.ListDealers)
		dealers.GET("/:id", h.GetDealer)
		dealers.POST("", auth, adminOnly, h.CreateDealer)
		dealers.PUT("/:id", auth, adminOnly, h.UpdateDealer)
	}

	promotions := r.Group("/promotions")
	{
		promotions.GET("", h.ListPromotions)
		promotions.GET("/:id", h.GetPromotion)
		promotions.POST("", auth, adminOnly, h.CreatePromotion)
		promotions.PUT("/:id", auth, adminOnly, h.UpdatePromotion)
	}
}
