package pricing

import (
	"fmt"
	"sort"
)

// Config holds the pricing constants that are policy rather than data:
// tax rate, fixed fees and the loyalty redemption rules.
type Config struct {
	TaxRatePercent     int64
	ServiceFeeCents    int64
	CashAtDeskFeeCents int64
	PointValueCents    int64
	LoyaltyCapPercent  int64
	MaxStayNights      int
}

// DefaultConfig returns the production policy: 12% tax, 25.00 service
// fee, 20.00 cash-at-desk surcharge, 1 point = 0.01, loyalty capped at
// 10% of the subtotal, stays up to 30 nights.
func DefaultConfig() Config {
	return Config{
		TaxRatePercent:     12,
		ServiceFeeCents:    2500,
		CashAtDeskFeeCents: 2000,
		PointValueCents:    1,
		LoyaltyCapPercent:  10,
		MaxStayNights:      30,
	}
}

// LineItem is one row of an itemized quote. Discounts carry negative
// amounts so the rows always sum to the grand total.
type LineItem struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Quote is the immutable result of pricing a stay. All amounts are
// integer cents.
type Quote struct {
	Lines          []LineItem `json:"lines"`
	Subtotal       int64      `json:"subtotal"`
	DiscountTotal  int64      `json:"discount_total"`
	TaxTotal       int64      `json:"tax_total"`
	SurchargeTotal int64      `json:"surcharge_total"`
	GrandTotal     int64      `json:"grand_total"`
}

// QuoteInput is everything the engine needs about one booking attempt.
type QuoteInput struct {
	Stay     Stay
	AddOns   []string
	Discount DiscountInput
	Payment  PaymentMethod
}

// Engine derives itemized quotes. It holds only immutable policy, so a
// single instance is safe for concurrent use and identical inputs always
// produce identical quotes.
type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Quote prices a stay against the current rate table and add-on catalog.
// Steps, in order: room subtotal, add-ons, promo and loyalty discounts,
// tax on the discounted subtotal, then fees. Rate table and catalog come
// from the caller on every invocation so catalog changes take effect
// immediately.
func (e *Engine) Quote(in QuoteInput, rates RateTable, catalog AddOnCatalog) (*Quote, error) {
	nights, err := in.Stay.validate(e.cfg.MaxStayNights)
	if err != nil {
		return nil, err
	}
	if in.Discount.LoyaltyPoints < 0 {
		return nil, ErrNegativePoints
	}
	if !in.Payment.Valid() {
		return nil, ErrUnknownPayment
	}

	weekend := HasWeekendNight(in.Stay.CheckIn, in.Stay.CheckOut)
	nightly, err := rates.NightlyRate(in.Stay.Category, weekend)
	if err != nil {
		return nil, err
	}

	q := &Quote{}
	roomSubtotal := nightly * int64(nights) * int64(in.Stay.Rooms)
	q.Lines = append(q.Lines, LineItem{
		Label:  fmt.Sprintf("%s x%d, %d night(s)", in.Stay.Category.Label(), in.Stay.Rooms, nights),
		Amount: roomSubtotal,
	})

	addOnTotal, addOnLines, err := priceAddOns(in.AddOns, catalog, nights)
	if err != nil {
		return nil, err
	}
	q.Lines = append(q.Lines, addOnLines...)

	q.Subtotal = roomSubtotal + addOnTotal

	if pct := PromoPercent(in.Discount.PromoCode); pct > 0 {
		promo := percentOf(q.Subtotal, pct)
		q.DiscountTotal += promo
		q.Lines = append(q.Lines, LineItem{
			Label:  fmt.Sprintf("Promo %s (%d%%)", in.Discount.PromoCode, pct),
			Amount: -promo,
		})
	}

	if loyalty := e.loyaltyDiscount(in.Discount, q.Subtotal); loyalty > 0 {
		q.DiscountTotal += loyalty
		q.Lines = append(q.Lines, LineItem{Label: "Loyalty points", Amount: -loyalty})
	}

	discounted := q.Subtotal - q.DiscountTotal
	if discounted < 0 {
		discounted = 0
	}

	q.TaxTotal = percentOf(discounted, e.cfg.TaxRatePercent)
	q.Lines = append(q.Lines, LineItem{
		Label:  fmt.Sprintf("Tax (%d%%)", e.cfg.TaxRatePercent),
		Amount: q.TaxTotal,
	})

	q.SurchargeTotal = e.cfg.ServiceFeeCents
	q.Lines = append(q.Lines, LineItem{Label: "Service fee", Amount: e.cfg.ServiceFeeCents})
	if in.Payment == PaymentCashAtDesk {
		q.SurchargeTotal += e.cfg.CashAtDeskFeeCents
		q.Lines = append(q.Lines, LineItem{Label: "Cash at desk surcharge", Amount: e.cfg.CashAtDeskFeeCents})
	}

	q.GrandTotal = discounted + q.TaxTotal + q.SurchargeTotal
	return q, nil
}

// loyaltyDiscount applies the redemption policy: never more than the
// points are worth, never more than the configured share of the
// subtotal.
func (e *Engine) loyaltyDiscount(d DiscountInput, subtotal int64) int64 {
	if !d.UseLoyaltyPoints || d.LoyaltyPoints <= 0 {
		return 0
	}
	value := d.LoyaltyPoints * e.cfg.PointValueCents
	if limit := percentOf(subtotal, e.cfg.LoyaltyCapPercent); value > limit {
		value = limit
	}
	return value
}

func priceAddOns(codes []string, catalog AddOnCatalog, nights int) (int64, []LineItem, error) {
	if len(codes) == 0 {
		return 0, nil, nil
	}

	seen := make(map[string]bool, len(codes))
	var total int64
	lines := make([]LineItem, 0, len(codes))

	sorted := append([]string(nil), codes...)
	sort.Strings(sorted)

	for _, code := range sorted {
		if seen[code] {
			return 0, nil, fmt.Errorf("add-on %q: %w", code, ErrDuplicateAddOn)
		}
		seen[code] = true

		addOn, ok := catalog[code]
		if !ok {
			return 0, nil, fmt.Errorf("add-on %q: %w", code, ErrUnknownAddOn)
		}

		amount := addOn.PriceCents
		label := addOn.Name
		if addOn.PerNight {
			amount *= int64(nights)
			label = fmt.Sprintf("%s (%d night(s))", addOn.Name, nights)
		}
		total += amount
		lines = append(lines, LineItem{Label: label, Amount: amount})
	}
	return total, lines, nil
}
