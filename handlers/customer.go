package handlers

import (
	"fmt"
	"net/http"

	"evdealer/validators"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ListCustomers GET /customers?q=
func (h *Handler) ListCustomers(c *gin.Context) {
	customers, err := h.Customers.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, "Failed to list customers", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}

// ListMyCustomers 只列出目前登入業務負責的客戶
func (h *Handler) ListMyCustomers(c *gin.Context) {
	staffID, _ := currentStaff(c)
	customers, err := h.Customers.ListMine(c.Request.Context(), c.Query("q"), staffID)
	if err != nil {
		respondError(c, "Failed to list customers", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Customers retrieved successfully", customers)
}

func (h *Handler) GetCustomer(c *gin.Context) {
	customer, err := h.Customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get customer", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Customer retrieved successfully", customer)
}

func (h *Handler) GetCustomerPayments(c *gin.Context) {
	payments, err := h.Customers.Payments(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to list payments", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *Handler) CreateCustomer(c *gin.Context) {
	var form validators.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		bindError(c, err)
		return
	}
	staffID, _ := currentStaff(c)
	customer, err := h.Customers.Create(c.Request.Context(), &form, staffID)
	if err != nil {
		respondError(c, "Failed to create customer", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Customer created successfully", customer)
}

func (h *Handler) UpdateCustomer(c *gin.Context) {
	var form validators.CustomerForm
	if err := c.ShouldBindJSON(&form); err != nil {
		bindError(c, err)
		return
	}
	customer, err := h.Customers.Update(c.Request.Context(), c.Param("id"), &form)
	if err != nil {
		respondError(c, "Failed to update customer", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Customer updated successfully", customer)
}

// ExportCustomers 下載 xlsx；mine=true 時只匯出自己的客戶
func (h *Handler) ExportCustomers(c *gin.Context) {
	var staffID string
	if c.Query("mine") == "true" {
		staffID, _ = currentStaff(c)
	}
	name, data, err := h.Customers.Export(c.Request.Context(), c.Query("q"), staffID)
	if err != nil {
		respondError(c, "Failed to export customers", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, xlsxContentType, data)
}
