package validators

import "strings"

// TestDriveForm 試駕預約表單（電話使用寬鬆規則）
type TestDriveForm struct {
	FullName       string `json:"fullName" validate:"required"`
	Phone          string `json:"phone" validate:"required,phone_loose"`
	Email          string `json:"email" validate:"required,email_light"`
	VehicleID      string `json:"vehicleId" validate:"required"`
	PreferredDate  string `json:"preferredDate" validate:"required,date_format,not_past_date"`
	PreferredTime  string `json:"preferredTime,omitempty"`
	PickupLocation string `json:"pickupLocation" validate:"required,oneof=dealer home"`
	DealerID       string `json:"dealerId" validate:"required_if=PickupLocation dealer"`
	HomeAddress    string `json:"homeAddress" validate:"required_if=PickupLocation home"`
	Note           string `json:"note,omitempty"`
	Agreement      bool   `json:"agreement" validate:"required"`
}

func (f *TestDriveForm) normalize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.HomeAddress = strings.TrimSpace(f.HomeAddress)
}

// DepositForm 訂金預約表單（電話使用嚴格規則，需身分證號）
type DepositForm struct {
	FullName       string  `json:"fullName" validate:"required"`
	Phone          string  `json:"phone" validate:"required,phone_strict"`
	Email          string  `json:"email" validate:"required,email_light"`
	IdentityCard   string  `json:"identityCard" validate:"required,national_id"`
	VehicleID      string  `json:"vehicleId" validate:"required"`
	Color          string  `json:"color,omitempty"`
	DeliveryDate   string  `json:"deliveryDate" validate:"required,date_format,not_past_date"`
	PickupLocation string  `json:"pickupLocation" validate:"required,oneof=dealer home"`
	DealerID       string  `json:"dealerId" validate:"required_if=PickupLocation dealer"`
	HomeAddress    string  `json:"homeAddress" validate:"required_if=PickupLocation home"`
	DepositAmount  float64 `json:"depositAmount" validate:"gte=0"`
	Agreement      bool    `json:"agreement" validate:"required"`
}

func (f *DepositForm) normalize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.HomeAddress = strings.TrimSpace(f.HomeAddress)
}

// CustomerForm 後台新增/編輯客戶
type CustomerForm struct {
	FullName     string `json:"fullName" validate:"required"`
	Phone        string `json:"phone" validate:"required,phone_strict"`
	Email        string `json:"email" validate:"required,email_light"`
	IdentityCard string `json:"identityCard" validate:"omitempty,national_id"`
	Address      string `json:"address"`
	DateOfBirth  string `json:"dateOfBirth" validate:"omitempty,date_format"`
	Note         string `json:"note"`
}

func (f *CustomerForm) normalize() {
	f.FullName = strings.TrimSpace(f.FullName)
	f.Address = strings.TrimSpace(f.Address)
}
