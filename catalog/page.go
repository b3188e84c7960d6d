package catalog

import "evdealer/models"

// Page 分頁後的資料區塊（回應的 data 欄位）
type Page struct {
	Page         int              `json:"page"`
	Limit        int              `json:"limit"`
	TotalPages   int              `json:"totalPages"`
	TotalRecords int              `json:"totalRecords"`
	Data         []models.Vehicle `json:"data"`
}

// Paginate page 從 1 開始；超出範圍回傳空的 Data
func Paginate(vehicles []models.Vehicle, page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(vehicles)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}

	// 先比較頁數再相乘，避免 (page-1)*limit 溢位
	data := []models.Vehicle{}
	if page <= totalPages {
		start := (page - 1) * limit
		end := total
		if total-start > limit {
			end = start + limit
		}
		data = vehicles[start:end]
	}

	return Page{
		Page:         page,
		Limit:        limit,
		TotalPages:   totalPages,
		TotalRecords: total,
		Data:         data,
	}
}
