package handlers

import (
	"errors"
	"net/http"

	"evdealer/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// APIResponse 定義統一的 API 回應結構
type APIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    interface{}       `json:"data,omitempty"` // omitempty 表示如果為空則不顯示
	Error   string            `json:"error,omitempty"`
	Code    string            `json:"code,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// context 中由 AuthMiddleware 寫入的鍵
const (
	ContextStaffID = "staff_id"
	ContextRole    = "role"
)

// SuccessResponse 返回成功的回應
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 返回失敗的回應
func ErrorResponse(c *gin.Context, statusCode int, code, message, err string) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Message: message,
		Error:   err,
		Code:    code,
	})
}

// AbortWithError 中介層使用，回應後中止後續處理
func AbortWithError(c *gin.Context, statusCode int, code, message, err string) {
	ErrorResponse(c, statusCode, code, message, err)
	c.Abort()
}

// respondError 依 service 錯誤對應狀態碼；原始錯誤只寫入日誌
func respondError(c *gin.Context, message string, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: message,
			Error:   "Please correct the highlighted fields",
			Code:    "ERR_VALIDATION",
			Errors:  verr.Errors,
		})
	case errors.Is(err, services.ErrInvalidInput):
		ErrorResponse(c, http.StatusBadRequest, "ERR_INVALID_INPUT", message, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusUnauthorized, "ERR_INVALID_CREDENTIALS", message, err.Error())
	case errors.Is(err, services.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "ERR_NOT_FOUND", message, "Resource not found")
	case errors.Is(err, services.ErrConflict):
		ErrorResponse(c, http.StatusConflict, "ERR_CONFLICT", message, err.Error())
	default:
		log.WithError(err).WithField("path", c.FullPath()).Error(message)
		ErrorResponse(c, http.StatusInternalServerError, "ERR_INTERNAL", message, "Internal server error")
	}
}

// bindError JSON 格式或 binding 標籤錯誤
func bindError(c *gin.Context, err error) {
	log.Printf("Invalid input data: %v", err)
	ErrorResponse(c, http.StatusBadRequest, "ERR_INVALID_INPUT", "Invalid input data", err.Error())
}

// currentStaff 取得 AuthMiddleware 寫入的身分
func currentStaff(c *gin.Context) (staffID, role string) {
	return c.GetString(ContextStaffID), c.GetString(ContextRole)
}
