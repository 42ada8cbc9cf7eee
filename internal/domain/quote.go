package domain

// ExtraHourRate is the flat surcharge, in rupiah, for each hour a rental runs
// past its last full day. It does not participate in tier discounts.
const ExtraHourRate = 100_000

// Quote is the server-computed price breakdown for a prospective rental. All
// monetary fields are integer rupiah.
type Quote struct {
	VehicleID       int64 `json:"vehicle_id"`
	RentalDays      int   `json:"rental_days"`
	ExtraHours      int   `json:"extra_hours"`
	Subtotal        int64 `json:"subtotal"`
	DiscountPercent int64 `json:"discount_percent"`
	DiscountAmount  int64 `json:"discount_amount"`
	ExtraHoursCost  int64 `json:"extra_hours_cost"`
	Total           int64 `json:"total"`
}

// DiscountPercent returns the tier discount for a rental of the given length.
// Tiers apply to the whole rental, not just the days past the threshold.
func DiscountPercent(rentalDays int) int64 {
	switch {
	case rentalDays >= 10:
		return 25
	case rentalDays >= 7:
		return 20
	case rentalDays >= 4:
		return 10
	default:
		return 0
	}
}

// NewQuote computes the full breakdown for renting a vehicle at pricePerDay
// for rentalDays days plus extraHours overrun hours. The discount truncates
// toward zero; the surcharge is added after the discount.
func NewQuote(vehicleID int64, pricePerDay int64, rentalDays int, extraHours int) Quote {
	subtotal := pricePerDay * int64(rentalDays)
	percent := DiscountPercent(rentalDays)
	discount := subtotal * percent / 100
	extraCost := int64(extraHours) * ExtraHourRate
	return Quote{
		VehicleID:       vehicleID,
		RentalDays:      rentalDays,
		ExtraHours:      extraHours,
		Subtotal:        subtotal,
		DiscountPercent: percent,
		DiscountAmount:  discount,
		ExtraHoursCost:  extraCost,
		Total:           subtotal - discount + extraCost,
	}
}
