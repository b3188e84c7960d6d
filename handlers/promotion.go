package handlers

import (
	"net/http"

	"evdealer/models"

	"github.com/gin-gonic/gin"
)

// ListPromotions 可用 status 篩選
func (h *Handler) ListPromotions(c *gin.Context) {
	promotions, err := h.Promotions.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, "Failed to list promotions", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Promotions retrieved successfully", promotions)
}

func (h *Handler) GetPromotion(c *gin.Context) {
	promotion, err := h.Promotions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get promotion", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Promotion retrieved successfully", promotion)
}

func (h *Handler) CreatePromotion(c *gin.Context) {
	var promotion models.Promotion
	if err := c.ShouldBindJSON(&promotion); err != nil {
		bindError(c, err)
		return
	}
	if err := h.Promotions.Create(c.Request.Context(), &promotion); err != nil {
		respondError(c, "Failed to create promotion", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Promotion created successfully", promotion)
}

func (h *Handler) UpdatePromotion(c *gin.Context) {
	var promotion models.Promotion
	if err := c.ShouldBindJSON(&promotion); err != nil {
		bindError(c, err)
		return
	}
	if err := h.Promotions.Update(c.Request.Context(), c.Param("id"), &promotion); err != nil {
		respondError(c, "Failed to update promotion", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Promotion updated successfully", promotion)
}
