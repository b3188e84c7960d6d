package handlers

import (
	"net/http"

	"evdealer/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListDealers(c *gin.Context) {
	dealers, err := h.Dealers.List(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to list dealers", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Dealers retrieved successfully", dealers)
}

func (h *Handler) GetDealer(c *gin.Context) {
	dealer, err := h.Dealers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get dealer", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Dealer retrieved successfully", dealer)
}

func (h *Handler) CreateDealer(c *gin.Context) {
	var dealer models.Dealer
	if err := c.ShouldBindJSON(&dealer); err != nil {
		bindError(c, err)
		return
	}
	if err := h.Dealers.Create(c.Request.Context(), &dealer); err != nil {
		respondError(c, "Failed to create dealer", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Dealer created successfully", dealer)
}

func (h *Handler) UpdateDealer(c *gin.Context) {
	var dealer models.Dealer
	if err := c.ShouldBindJSON(&dealer); err != nil {
		bindError(c, err)
		return
	}
	if err := h.Dealers.Update(c.Request.Context(), c.Param("id"), &dealer); err != nil {
		respondError(c, "Failed to update dealer", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Dealer updated successfully", dealer)
}
