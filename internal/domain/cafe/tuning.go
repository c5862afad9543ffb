package cafe

const (
	TaxRate        = 0.08
	TopSellerLimit = 5

	// Single-cafe deployment: every entity hangs off this cafe id.
	DefaultCafeID = "cafe_1"

	DefaultDailyRevenueDays = 7
)

func DefaultSettings() Settings {
	return Settings{
		CafeName: "Meowtopia Cat Cafe",
		OpeningHours: map[string]string{
			"monday":    "9:00 AM - 10:00 PM",
			"tuesday":   "9:00 AM - 10:00 PM",
			"wednesday": "9:00 AM - 10:00 PM",
			"thursday":  "9:00 AM - 10:00 PM",
			"friday":    "9:00 AM - 11:00 PM",
			"saturday":  "10:00 AM - 11:00 PM",
			"sunday":    "10:00 AM - 9:00 PM",
		},
		MaxCapacity:          50,
		AutoRestockThreshold: 10,
		TaxRate:              TaxRate,
		ServiceChargeRate:    0.15,
		CatInteractionFee:    5.0,
	}
}
