package pricing

// All monetary amounts are integer cents. Percentage steps round half to
// even at whole currency units, which is what the booking screens always
// displayed (12% of 837.00 is 100, not 100.44).

const centsPerUnit = 100

// percentOf returns pct percent of amount, rounded half to even to the
// nearest whole currency unit. amount is in cents, pct a whole percent.
func percentOf(amount, pct int64) int64 {
	n := amount * pct
	const d = 100 * centsPerUnit
	units := n / d
	rem := n % d
	switch {
	case rem*2 > d:
		units++
	case rem*2 == d && units%2 != 0:
		units++
	}
	return units * centsPerUnit
}
