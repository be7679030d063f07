package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testRates() RateTable {
	return RateTable{
		CategoryStandard:     {BaseNightly: 14900, WeekendNightly: 17900},
		CategoryDeluxe:       {BaseNightly: 22900, WeekendNightly: 27900},
		CategoryExecutive:    {BaseNightly: 34900, WeekendNightly: 41900},
		CategoryPresidential: {BaseNightly: 59900, WeekendNightly: 69900},
	}
}

func testCatalog() AddOnCatalog {
	return AddOnCatalog{
		"breakfast": {Code: "breakfast", Name: "Breakfast", PerNight: true, PriceCents: 1800},
		"spa":       {Code: "spa", Name: "Spa Package", PerNight: false, PriceCents: 8500},
	}
}

// Deluxe room, 3 nights including a Saturday, no add-ons, no discounts,
// credit card: 279 x 3 = 837, tax 100, service fee 25, total 962.
func TestQuote_DeluxeWeekendStay(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	in := QuoteInput{
		Stay: Stay{
			// Thu 1 Jan 2026 to Sun 4 Jan: nights Thu, Fri, Sat
			CheckIn:  date(2026, time.January, 1),
			CheckOut: date(2026, time.January, 4),
			Category: CategoryDeluxe,
			Rooms:    1,
			Adults:   2,
		},
		Payment: PaymentCreditCard,
	}

	q, err := engine.Quote(in, testRates(), testCatalog())
	require.NoError(t, err)

	assert.Equal(t, int64(83700), q.Subtotal)
	assert.Equal(t, int64(0), q.DiscountTotal)
	assert.Equal(t, int64(10000), q.TaxTotal)
	assert.Equal(t, int64(2500), q.SurchargeTotal)
	assert.Equal(t, int64(96200), q.GrandTotal)
}

// The weekend rate applies uniformly to the whole stay once any night
// touches Friday or Saturday; nights are not priced individually.
func TestQuote_WeekendRateIsUniform(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	weekday := QuoteInput{
		Stay: Stay{
			// Mon 5 Jan to Thu 8 Jan: no weekend night
			CheckIn:  date(2026, time.January, 5),
			CheckOut: date(2026, time.January, 8),
			Category: CategoryDeluxe,
			Rooms:    1,
			Adults:   1,
		},
		Payment: PaymentCreditCard,
	}
	weekend := weekday
	// Thu 8 Jan to Sun 11 Jan: Fri and Sat nights included
	weekend.Stay.CheckIn = date(2026, time.January, 8)
	weekend.Stay.CheckOut = date(2026, time.January, 11)

	qWeekday, err := engine.Quote(weekday, testRates(), testCatalog())
	require.NoError(t, err)
	qWeekend, err := engine.Quote(weekend, testRates(), testCatalog())
	require.NoError(t, err)

	assert.Equal(t, int64(22900*3), qWeekday.Subtotal)
	assert.Equal(t, int64(27900*3), qWeekend.Subtotal)
}

// SAVE10 on a 957.00 subtotal discounts 96.00.
func TestQuote_PromoCodeSAVE10(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	rates := RateTable{CategoryStandard: {BaseNightly: 31900, WeekendNightly: 31900}}

	in := QuoteInput{
		Stay: Stay{
			CheckIn:  date(2026, time.January, 5),
			CheckOut: date(2026, time.January, 8),
			Category: CategoryStandard,
			Rooms:    1,
			Adults:   1,
		},
		Discount: DiscountInput{PromoCode: "SAVE10"},
		Payment:  PaymentCreditCard,
	}

	q, err := engine.Quote(in, rates, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(95700), q.Subtotal)
	assert.Equal(t, int64(9600), q.DiscountTotal)
	// tax on discounted subtotal: 12% of 861.00 -> 103.00
	assert.Equal(t, int64(10300), q.TaxTotal)
	assert.Equal(t, int64(86100+10300+2500), q.GrandTotal)
}

func TestQuote_UnknownPromoCodeIsIgnored(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	in := QuoteInput{
		Stay: Stay{
			CheckIn:  date(2026, time.January, 5),
			CheckOut: date(2026, time.January, 8),
			Category: CategoryStandard,
			Rooms:    1,
			Adults:   1,
		},
		Discount: DiscountInput{PromoCode: "TOTALLY-BOGUS"},
		Payment:  PaymentCreditCard,
	}

	q, err := engine.Quote(in, testRates(), testCatalog())
	require.NoError(t, err)
	assert.Equal(t, int64(0), q.DiscountTotal)
}

// Two quotes differing only in payment method differ by exactly the
// fixed cash-at-desk surcharge.
func TestQuote_CashAtDeskSurcharge(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	card := QuoteInput{
		Stay: Stay{
			CheckIn:  date(2026, time.January, 5),
			CheckOut: date(2026, time.January, 8),
			Category: CategoryExecutive,
			Rooms:    1,
			Adults:   2,
		},
		Payment: PaymentCreditCard,
	}
	cash := card
	cash.Payment = PaymentCashAtDesk

	qCard, err := engine.Quote(card, testRates(), testCatalog())
	require.NoError(t, err)
	qCash, err := engine.Quote(cash, testRates(), testCatalog())
	require.NoError(t, err)

	assert.Equal(t, int64(2000), qCash.GrandTotal-qCard.GrandTotal)
	assert.Equal(t, qCard.TaxTotal, qCash.TaxTotal)
}

func TestQuote_AddOns(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	in := QuoteInput{
		Stay: Stay{
			CheckIn:  date(2026, time.January, 5),
			CheckOut: date(2026, time.January, 8),
			Category: CategoryStandard,
			Rooms:    1,
			Adults:   2,
		},
		AddOns:  []string{"breakfast", "spa"},
		Payment: PaymentCreditCard,
	}

	q, err := engine.Quote(in, testRates(), testCatalog())
	require.NoError(t, err)

	// breakfast is per night (3 x 18.00), spa once per stay
	assert.Equal(t, int64(14900*3+1800*3+8500), q.Subtotal)
}

func TestQuote_LoyaltyPoints(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	rates := RateTable{CategoryStandard: {BaseNightly: 31900, WeekendNightly: 31900}}

	stay := Stay{
		CheckIn:  date(2026, time.January, 5),
		CheckOut: date(2026, time.January, 8),
		Category: CategoryStandard,
		Rooms:    1,
		Adults:   1,
	}

	t.Run("redeems point value when below cap", func(t *testing.T) {
		in := QuoteInput{
			Stay:     stay,
			Discount: DiscountInput{LoyaltyPoints: 2000, UseLoyaltyPoints: true},
			Payment:  PaymentCreditCard,
		}
		q, err := engine.Quote(in, rates, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2000), q.DiscountTotal)
	})

	t.Run("capped at ten percent of subtotal", func(t *testing.T) {
		in := QuoteInput{
			Stay:     stay,
			Discount: DiscountInput{LoyaltyPoints: 500000, UseLoyaltyPoints: true},
			Payment:  PaymentCreditCard,
		}
		q, err := engine.Quote(in, rates, nil)
		require.NoError(t, err)
		// 10% of 957.00 -> 96.00 (rounded to whole units)
		assert.Equal(t, int64(9600), q.DiscountTotal)
	})

	t.Run("ignored without the redeem flag", func(t *testing.T) {
		in := QuoteInput{
			Stay:     stay,
			Discount: DiscountInput{LoyaltyPoints: 500000, UseLoyaltyPoints: false},
			Payment:  PaymentCreditCard,
		}
		q, err := engine.Quote(in, rates, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), q.DiscountTotal)
	})
}

func TestQuote_DiscountsNeverExceedSubtotal(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	in := QuoteInput{
		Stay: Stay{
			CheckIn:  date(2026, time.January, 1),
			CheckOut: date(2026, time.January, 8),
			Category: CategoryPresidential,
			Rooms:    3,
			Adults:   6,
		},
		Discount: DiscountInput{PromoCode: "SAVE25", LoyaltyPoints: 10_000_000, UseLoyaltyPoints: true},
		Payment:  PaymentCashAtDesk,
	}

	q, err := engine.Quote(in, testRates(), testCatalog())
	require.NoError(t, err)
	assert.LessOrEqual(t, q.DiscountTotal, q.Subtotal)
	assert.GreaterOrEqual(t, q.GrandTotal, int64(0))
}

func TestQuote_IsPure(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	in := QuoteInput{
		Stay: Stay{
			CheckIn:  date(2026, time.January, 1),
			CheckOut: date(2026, time.January, 4),
			Category: CategoryDeluxe,
			Rooms:    2,
			Adults:   3,
			Children: 1,
		},
		AddOns:   []string{"spa", "breakfast"},
		Discount: DiscountInput{PromoCode: "SAVE15", LoyaltyPoints: 300, UseLoyaltyPoints: true},
		Payment:  PaymentCashAtDesk,
	}

	first, err := engine.Quote(in, testRates(), testCatalog())
	require.NoError(t, err)
	second, err := engine.Quote(in, testRates(), testCatalog())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Line items always sum to the grand total; there is no rounding drift
// between the itemization and the totals.
func TestQuote_LineItemsSumToGrandTotal(t *testing.T) {
	engine := NewEngine(DefaultConfig())

	inputs := []QuoteInput{
		{
			Stay:    Stay{CheckIn: date(2026, time.January, 1), CheckOut: date(2026, time.January, 4), Category: CategoryDeluxe, Rooms: 1, Adults: 2},
			Payment: PaymentCreditCard,
		},
		{
			Stay:     Stay{CheckIn: date(2026, time.January, 5), CheckOut: date(2026, time.January, 8), Category: CategoryStandard, Rooms: 2, Adults: 2, Children: 2},
			AddOns:   []string{"breakfast", "spa"},
			Discount: DiscountInput{PromoCode: "SAVE20", LoyaltyPoints: 1500, UseLoyaltyPoints: true},
			Payment:  PaymentCashAtDesk,
		},
		{
			Stay:     Stay{CheckIn: date(2026, time.February, 2), CheckOut: date(2026, time.February, 10), Category: CategoryPresidential, Rooms: 1, Adults: 2},
			Discount: DiscountInput{PromoCode: "SAVE25"},
			Payment:  PaymentPayPal,
		},
	}

	for _, in := range inputs {
		q, err := engine.Quote(in, testRates(), testCatalog())
		require.NoError(t, err)

		var sum int64
		for _, line := range q.Lines {
			sum += line.Amount
		}
		assert.Equal(t, q.GrandTotal, sum)
	}
}

func TestQuote_ValidationErrors(t *testing.T) {
	engine := NewEngine(DefaultConfig())
	validStay := Stay{
		CheckIn:  date(2026, time.January, 5),
		CheckOut: date(2026, time.January, 8),
		Category: CategoryStandard,
		Rooms:    1,
		Adults:   1,
	}

	cases := []struct {
		name    string
		mutate  func(*QuoteInput)
		wantErr error
	}{
		{
			name: "check-out before check-in",
			mutate: func(in *QuoteInput) {
				in.Stay.CheckOut = in.Stay.CheckIn.AddDate(0, 0, -1)
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "zero-night stay",
			mutate: func(in *QuoteInput) {
				in.Stay.CheckOut = in.Stay.CheckIn
			},
			wantErr: ErrInvalidRange,
		},
		{
			name: "stay longer than 30 nights",
			mutate: func(in *QuoteInput) {
				in.Stay.CheckOut = in.Stay.CheckIn.AddDate(0, 0, 31)
			},
			wantErr: ErrStayTooLong,
		},
		{
			name:    "unknown category",
			mutate:  func(in *QuoteInput) { in.Stay.Category = "penthouse" },
			wantErr: ErrUnknownCategory,
		},
		{
			name:    "zero rooms",
			mutate:  func(in *QuoteInput) { in.Stay.Rooms = 0 },
			wantErr: ErrRoomQuantity,
		},
		{
			name: "no guests",
			mutate: func(in *QuoteInput) {
				in.Stay.Adults = 0
				in.Stay.Children = 0
			},
			wantErr: ErrNoGuests,
		},
		{
			name:    "unknown add-on",
			mutate:  func(in *QuoteInput) { in.AddOns = []string{"helipad"} },
			wantErr: ErrUnknownAddOn,
		},
		{
			name:    "duplicate add-on",
			mutate:  func(in *QuoteInput) { in.AddOns = []string{"spa", "spa"} },
			wantErr: ErrDuplicateAddOn,
		},
		{
			name:    "negative loyalty points",
			mutate:  func(in *QuoteInput) { in.Discount.LoyaltyPoints = -1 },
			wantErr: ErrNegativePoints,
		},
		{
			name:    "unknown payment method",
			mutate:  func(in *QuoteInput) { in.Payment = "barter" },
			wantErr: ErrUnknownPayment,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := QuoteInput{Stay: validStay, Payment: PaymentCreditCard}
			tc.mutate(&in)

			_, err := engine.Quote(in, testRates(), testCatalog())
			assert.ErrorIs(t, err, tc.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestPercentOf_RoundsHalfToEvenAtWholeUnits(t *testing.T) {
	cases := []struct {
		amount, pct, want int64
	}{
		{83700, 12, 10000}, // 100.44 -> 100
		{95700, 10, 9600},  // 95.70 -> 96
		{86100, 12, 10300}, // 103.32 -> 103
		{12500, 10, 1200},  // 12.50 -> 12 (half to even)
		{13500, 10, 1400},  // 13.50 -> 14 (half to even)
		{0, 12, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, percentOf(tc.amount, tc.pct), "percentOf(%d, %d)", tc.amount, tc.pct)
	}
}
