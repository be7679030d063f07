package pricing

type PaymentMethod string

const (
	PaymentCreditCard  PaymentMethod = "credit_card"
	PaymentPayPal      PaymentMethod = "paypal"
	PaymentMobileMoney PaymentMethod = "mobile_money"
	PaymentCashAtDesk  PaymentMethod = "cash_at_desk"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCreditCard, PaymentPayPal, PaymentMobileMoney, PaymentCashAtDesk:
		return true
	}
	return false
}
