package fixtures

import "evdealer/models"

func Dealers() []models.Dealer {
	return []models.Dealer{
		{ID: "dealer-hn-01", Name: "EV Dealer Ha Noi", Address: "72 Le Thanh Ton, Hoan Kiem", City: "Ha Noi", Phone: "0241234567", Email: "hanoi@evdealer.local"},
		{ID: "dealer-hcm-01", Name: "EV Dealer Sai Gon", Address: "15 Nguyen Hue, District 1", City: "Ho Chi Minh", Phone: "0281234567", Email: "saigon@evdealer.local"},
		{ID: "dealer-dn-01", Name: "EV Dealer Da Nang", Address: "8 Bach Dang, Hai Chau", City: "Da Nang", Phone: "0236123456", Email: "danang@evdealer.local"},
	}
}
