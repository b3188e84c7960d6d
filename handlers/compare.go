package handlers

import (
	"net/http"

	"evdealer/compare"

	"github.com/gin-gonic/gin"
)

// CompareToggleResponse toggle 結果；Outcome 為 added/removed/full
type CompareToggleResponse struct {
	Outcome string      `json:"outcome"`
	View    interface{} `json:"compare"`
}

func (h *Handler) CreateCompareSession(c *gin.Context) {
	view, err := h.Compare.NewSession(c.Request.Context())
	if err != nil {
		respondError(c, "Failed to create compare session", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Compare session created", view)
}

func (h *Handler) GetCompareSession(c *gin.Context) {
	view, err := h.Compare.Get(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, "Failed to load compare session", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Compare session retrieved", view)
}

// ToggleCompareVehicle 已滿時仍回 200，由 outcome 提示使用者
func (h *Handler) ToggleCompareVehicle(c *gin.Context) {
	view, outcome, err := h.Compare.Toggle(c.Request.Context(), c.Param("sessionId"), c.Param("vehicleId"))
	if err != nil {
		respondError(c, "Failed to update compare list", err)
		return
	}

	message := "Compare list updated"
	if outcome == compare.Full {
		message = "You can compare at most 3 vehicles"
	}
	SuccessResponse(c, http.StatusOK, message, CompareToggleResponse{Outcome: outcome.String(), View: view})
}

func (h *Handler) ClearCompareSession(c *gin.Context) {
	view, err := h.Compare.Clear(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		respondError(c, "Failed to clear compare list", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Compare list cleared", view)
}
