package pricing

import "strings"

// DiscountInput carries the promo and loyalty choices from the booking
// form. Both are optional.
type DiscountInput struct {
	PromoCode        string
	LoyaltyPoints    int64
	UseLoyaltyPoints bool
}

// The set of promo codes is closed. Unknown or empty codes resolve to
// zero percent and are deliberately not an error: the booking form has
// always ignored bad codes silently, and front ends rely on that.
var promoPercents = map[string]int64{
	"SAVE10": 10,
	"SAVE15": 15,
	"SAVE20": 20,
	"SAVE25": 25,
}

// PromoPercent resolves a promo code to its discount percentage,
// returning 0 for anything unrecognized.
func PromoPercent(code string) int64 {
	return promoPercents[strings.ToUpper(strings.TrimSpace(code))]
}
