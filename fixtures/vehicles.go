// Package fixtures 內建的離線目錄資料，用於初始化資料庫與 API 失敗時的備援
package fixtures

import "evdealer/models"

// Vehicles 每次回傳新的 slice，呼叫端可自由修改
func Vehicles() []models.Vehicle {
	f, n := models.Float, models.Int
	return []models.Vehicle{
		{
			ID: "vf3", SKU: "VF3-STD", Name: "VF 3", Model: "Mini SUV", Version: "Standard",
			Color: "Summer Yellow", Colors: []string{"Summer Yellow", "Crimson Red", "Jet Black", "Brahminy White"},
			Price: f(299_000_000), WholesalePrice: f(268_000_000),
			RangeKm: f(215), TopSpeedKmh: f(100), MotorPowerKw: f(30), AccelerationSec: nil,
			ChargingTime: "36 min (10-70%)", BatteryType: "LFP", SeatingCapacity: n(4),
			Drivetrain: "RWD", ReleaseStatus: "available",
			Features:       []string{"10-inch touchscreen", "Keyless entry"},
			SafetyFeatures: []string{"ABS", "EBD", "Airbags"},
			Images:         []string{"/images/vf3/front.jpg", "/images/vf3/side.jpg"},
			Stock:          24,
			Description:    "Compact city EV with a playful design.",
		},
		{
			ID: "vf5", SKU: "VF5-PLUS", Name: "VF 5", Model: "A-SUV", Version: "Plus",
			Color: "Brahminy White", Colors: []string{"Brahminy White", "Zenith Grey", "Sunset Orange"},
			Price: f(529_000_000), WholesalePrice: f(479_000_000),
			RangeKm: f(326), TopSpeedKmh: f(130), MotorPowerKw: f(100), AccelerationSec: nil,
			ChargingTime: "30 min (10-70%)", BatteryType: "LFP", SeatingCapacity: n(5),
			Drivetrain: "FWD", ReleaseStatus: "available",
			Features:       []string{"8-inch touchscreen", "Smart voice assistant"},
			SafetyFeatures: []string{"ABS", "ESC", "Airbags", "Hill start assist"},
			Images:         []string{"/images/vf5/front.jpg"},
			Stock:          15,
			Description:    "Urban A-segment SUV.",
		},
		{
			ID: "vf6", SKU: "VF6-ECO", Name: "VF 6", Model: "B-SUV", Version: "Eco",
			Color: "Zenith Grey", Colors: []string{"Zenith Grey", "Jet Black", "Crimson Red"},
			Price: f(689_000_000), WholesalePrice: f(622_000_000),
			RangeKm: f(480), TopSpeedKmh: f(150), MotorPowerKw: f(130), AccelerationSec: f(8.9),
			ChargingTime: "25 min (10-70%)", BatteryType: "LFP", SeatingCapacity: n(5),
			Drivetrain: "FWD", ReleaseStatus: "available",
			Features:       []string{"12.9-inch touchscreen", "Panoramic roof"},
			SafetyFeatures: []string{"ABS", "ESC", "ADAS", "Airbags"},
			Images:         []string{"/images/vf6/front.jpg"},
			Stock:          9,
			Description:    "B-segment SUV with level 2 driver assistance.",
		},
		{
			ID: "vf7", SKU: "VF7-PLUS", Name: "VF 7", Model: "C-SUV", Version: "Plus AWD",
			Color: "Crimson Red", Colors: []string{"Crimson Red", "Jet Black", "Brahminy White"},
			Price: f(999_000_000), WholesalePrice: f(905_000_000),
			RangeKm: f(431), TopSpeedKmh: f(200), MotorPowerKw: f(260), AccelerationSec: f(5.8),
			ChargingTime: "24 min (10-70%)", BatteryType: "NMC", SeatingCapacity: n(5),
			Drivetrain: "AWD", ReleaseStatus: "available",
			Features:       []string{"Head-up display", "Ventilated seats"},
			SafetyFeatures: []string{"ABS", "ESC", "ADAS", "Airbags", "360 camera"},
			Images:         []string{"/images/vf7/front.jpg"},
			Stock:          6,
			Description:    "Sporty C-segment crossover.",
		},
		{
			ID: "vf8", SKU: "VF8-PLUS", Name: "VF 8", Model: "D-SUV", Version: "Plus",
			Color: "Deep Ocean", Colors: []string{"Deep Ocean", "Jet Black", "Zenith Grey"},
			Price: f(1_199_000_000), WholesalePrice: f(1_090_000_000),
			RangeKm: f(457), TopSpeedKmh: f(200), MotorPowerKw: f(300), AccelerationSec: f(5.5),
			ChargingTime: "31 min (10-70%)", BatteryType: "NMC", SeatingCapacity: n(5),
			Drivetrain: "AWD", ReleaseStatus: "available",
			Features:       []string{"15.6-inch touchscreen", "Heated seats", "Premium audio"},
			SafetyFeatures: []string{"ABS", "ESC", "ADAS", "Airbags", "360 camera"},
			Images:         []string{"/images/vf8/front.jpg", "/images/vf8/interior.jpg"},
			Stock:          4,
			Description:    "Mid-size electric SUV.",
		},
		{
			ID: "vf9", SKU: "VF9-PLUS", Name: "VF 9", Model: "E-SUV", Version: "Plus",
			Color: "Jet Black", Colors: []string{"Jet Black", "Brahminy White"},
			Price: f(1_699_000_000), WholesalePrice: nil,
			RangeKm: nil, TopSpeedKmh: f(200), MotorPowerKw: f(300), AccelerationSec: f(6.5),
			ChargingTime: "35 min (10-70%)", BatteryType: "NMC", SeatingCapacity: n(7),
			Drivetrain: "AWD", ReleaseStatus: "preorder",
			Features:       []string{"Captain chairs", "Rear entertainment"},
			SafetyFeatures: []string{"ABS", "ESC", "ADAS", "Airbags", "360 camera"},
			Images:         []string{"/images/vf9/front.jpg"},
			Stock:          0,
			Description:    "Full-size three-row SUV.",
		},
	}
}
