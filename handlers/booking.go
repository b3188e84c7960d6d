package handlers

import (
	"net/http"

	"evdealer/models"
	"evdealer/services"
	"evdealer/validators"

	"github.com/gin-gonic/gin"
)

// BookingResponse 送出結果與表單狀態旗標
type BookingResponse struct {
	Booking          *models.BookingRecord `json:"booking"`
	IsSubmitting     bool                  `json:"isSubmitting"`
	ShowSuccessModal bool                  `json:"showSuccessModal"`
}

func (h *Handler) SubmitTestDrive(c *gin.Context) {
	var form validators.TestDriveForm
	if err := c.ShouldBindJSON(&form); err != nil {
		bindError(c, err)
		return
	}

	state := &services.SubmitState{}
	record, err := h.Bookings.SubmitTestDrive(c.Request.Context(), &form, state)
	if err != nil {
		respondError(c, "Failed to book test drive", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Test drive booked successfully", BookingResponse{
		Booking:          record,
		IsSubmitting:     state.IsSubmitting(),
		ShowSuccessModal: state.ShowSuccessModal(),
	})
}

func (h *Handler) SubmitDeposit(c *gin.Context) {
	var form validators.DepositForm
	if err := c.ShouldBindJSON(&form); err != nil {
		bindError(c, err)
		return
	}

	state := &services.SubmitState{}
	record, err := h.Bookings.SubmitDeposit(c.Request.Context(), &form, state)
	if err != nil {
		respondError(c, "Failed to place deposit", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Deposit placed successfully", BookingResponse{
		Booking:          record,
		IsSubmitting:     state.IsSubmitting(),
		ShowSuccessModal: state.ShowSuccessModal(),
	})
}

// ListBookings kind 為 test-drive 或 deposit
func (h *Handler) ListBookings(c *gin.Context) {
	records, err := h.Bookings.List(c.Request.Context(), c.Param("kind"))
	if err != nil {
		respondError(c, "Failed to list bookings", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", records)
}
