package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginInput 登入請求
type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	result, err := h.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, "Login failed", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Me 回傳目前登入的員工資料
func (h *Handler) Me(c *gin.Context) {
	staffID, _ := currentStaff(c)
	staff, err := h.Auth.Me(c.Request.Context(), staffID)
	if err != nil {
		respondError(c, "Failed to get profile", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Profile retrieved successfully", staff)
}
