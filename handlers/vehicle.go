package handlers

import (
	"net/http"
	"strconv"

	"evdealer/catalog"
	"evdealer/models"

	"github.com/gin-gonic/gin"
)

// ListVehicles 目錄查詢，支援篩選、排序與分頁
func (h *Handler) ListVehicles(c *gin.Context) {
	spec, err := catalog.ParseFilterSpec(c.Request.URL.Query())
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "ERR_INVALID_FILTER", "Invalid filter", err.Error())
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	listing := h.Vehicles.List(c.Request.Context(), spec, page, limit)
	SuccessResponse(c, http.StatusOK, listing.Message, listing.Page)
}

func (h *Handler) GetVehicle(c *gin.Context) {
	v, err := h.Vehicles.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "Failed to get vehicle", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", v.PublicVehicle())
}

// CreateVehicle 管理員新增車輛
func (h *Handler) CreateVehicle(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		bindError(c, err)
		return
	}
	if err := h.Vehicles.Create(c.Request.Context(), &v); err != nil {
		respondError(c, "Failed to create vehicle", err)
		return
	}
	SuccessResponse(c, http.StatusCreated, "Vehicle created successfully", v)
}

func (h *Handler) UpdateVehicle(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		bindError(c, err)
		return
	}
	if err := h.Vehicles.Update(c.Request.Context(), c.Param("id"), &v); err != nil {
		respondError(c, "Failed to update vehicle", err)
		return
	}
	SuccessResponse(c, http.StatusOK, "Vehicle updated successfully", v)
}
