package booking

import "github.com/salonbelle/booking-api/internal/models"

// EventActiveOn reports whether today falls inside [StartDate, EndDate], open-ended when
// EndDate is unset. Dates compare lexicographically in 2006-01-02 form.
func EventActiveOn(e *models.Event, today string) bool {
	if !e.IsActive || e.StartDate == "" {
		return false
	}
	if today < e.StartDate {
		return false
	}
	if e.EndDate != nil && *e.EndDate != "" && today > *e.EndDate {
		return false
	}
	return true
}

// BestDiscount is the highest discount among events active today. Zero when
// no promotion applies.
func BestDiscount(events []models.Event, today string) int {
	best := 0
	for i := range events {
		e := &events[i]
		if !EventActiveOn(e, today) || e.DiscountPercent == nil {
			continue
		}
		if *e.DiscountPercent > best {
			best = *e.DiscountPercent
		}
	}
	return best
}

// DiscountedPrice floors to whole currency units. Display only; the stored
// appointment never carries a discount.
func DiscountedPrice(price, discountPercent int) int {
	if discountPercent <= 0 {
		return price
	}
	return price * (100 - discountPercent) / 100
}
