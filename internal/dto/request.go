package dto

import (
	"time"

	"github.com/BLACKCODE1234/Hotel-System-sub000/internal/pricing"
)

const dateLayout = "2006-01-02"

// QuoteRequest is the booking form payload. Dates are calendar dates;
// times of day never influence pricing.
type QuoteRequest struct {
	CheckIn          string   `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut         string   `json:"check_out" validate:"required,datetime=2006-01-02"`
	Category         string   `json:"category" validate:"required,oneof=standard deluxe executive presidential"`
	Rooms            int      `json:"rooms" validate:"required,gte=1"`
	Adults           int      `json:"adults" validate:"gte=0"`
	Children         int      `json:"children" validate:"gte=0"`
	AddOns           []string `json:"add_ons" validate:"omitempty,unique"`
	PromoCode        string   `json:"promo_code"`
	LoyaltyPoints    int64    `json:"loyalty_points" validate:"gte=0"`
	UseLoyaltyPoints bool     `json:"use_loyalty_points"`
	PaymentMethod    string   `json:"payment_method" validate:"required,oneof=credit_card paypal mobile_money cash_at_desk"`
}

// ToQuoteInput converts the wire payload into engine input. Date parsing
// cannot fail after validation but the error is still propagated.
func (r QuoteRequest) ToQuoteInput() (pricing.QuoteInput, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return pricing.QuoteInput{}, err
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return pricing.QuoteInput{}, err
	}
	return pricing.QuoteInput{
		Stay: pricing.Stay{
			CheckIn:  checkIn,
			CheckOut: checkOut,
			Category: pricing.RoomCategory(r.Category),
			Rooms:    r.Rooms,
			Adults:   r.Adults,
			Children: r.Children,
		},
		AddOns: r.AddOns,
		Discount: pricing.DiscountInput{
			PromoCode:        r.PromoCode,
			LoyaltyPoints:    r.LoyaltyPoints,
			UseLoyaltyPoints: r.UseLoyaltyPoints,
		},
		Payment: pricing.PaymentMethod(r.PaymentMethod),
	}, nil
}

// CreateReservationRequest books a stay; it is priced exactly like a
// quote request.
type CreateReservationRequest struct {
	QuoteRequest
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed checked_in checked_out cancelled"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied cleaning maintenance"`
}
