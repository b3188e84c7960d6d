package models

import "time"

const (
	BookingTestDrive = "testDrive"
	BookingDeposit   = "deposit"
)

const (
	PickupDealer = "dealer"
	PickupHome   = "home"
)

// BookingRecord 寫入預約紀錄檔的內容
type BookingRecord struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	FullName       string    `json:"fullName"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	IdentityCard   string    `json:"identityCard,omitempty"`
	VehicleID      string    `json:"vehicleId"`
	Color          string    `json:"color,omitempty"`
	Date           string    `json:"date"`
	PickupLocation string    `json:"pickupLocation"`
	DealerID       string    `json:"dealerId,omitempty"`
	HomeAddress    string    `json:"homeAddress,omitempty"`
	DepositAmount  float64   `json:"depositAmount,omitempty"`
	Note           string    `json:"note,omitempty"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
