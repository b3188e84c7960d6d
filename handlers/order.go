package handlers

import (
	"net/http"

	"evdealer/services"

	"github.com/gin-gonic/gin"
)

// ListOrders 可用 customerId 篩選
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context(), c.Query("customerId"))
	if err != nil {
		respondError(c, "Failed to list orders", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get order", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Order retrieved successfully", order)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req services.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	order, err := h.Orders.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, "Failed to create order", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Order created successfully", order)
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	var req services.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	order, err := h.Orders.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, "Failed to update order", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Order updated successfully", order)
}
