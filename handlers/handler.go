package handlers

import "evdealer/services"

// Handler 集中所有 HTTP 處理函式的相依服務
type Handler struct {
	Vehicles   *services.VehicleService
	Compare    *services.CompareService
	Bookings   *services.BookingService
	Customers  *services.CustomerService
	Orders     *services.OrderService
	Dealers    *services.DealerService
	Promotions *services.PromotionService
	Auth       *services.AuthService
}
