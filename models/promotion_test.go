package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromotionStatusOn(t *testing.T) {
	p := Promotion{StartDate: "2026-10-01", EndDate: "2026-10-31"}

	assert.Equal(t, PromotionScheduled, p.StatusOn("2026-09-30"))
	assert.Equal(t, PromotionActive, p.StatusOn("2026-10-01"))
	assert.Equal(t, PromotionActive, p.StatusOn("2026-10-31"))
	assert.Equal(t, PromotionExpired, p.StatusOn("2026-11-01"))
}

func TestVehicleHasColorAndPublic(t *testing.T) {
	v := Vehicle{ID: "vf8", Color: "Red", Colors: []string{"Blue"}, WholesalePrice: Float(100)}

	assert.True(t, v.HasColor("Red"))
	assert.True(t, v.HasColor("Blue"))
	assert.False(t, v.HasColor("Green"))
	assert.Nil(t, v.PublicVehicle().WholesalePrice)
	assert.NotNil(t, v.WholesalePrice)
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, ValidOrderStatus(OrderStatusDelivered))
	assert.False(t, ValidOrderStatus("shipped"))
}
