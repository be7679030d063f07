package pricing

type RoomCategory string

const (
	CategoryStandard     RoomCategory = "standard"
	CategoryDeluxe       RoomCategory = "deluxe"
	CategoryExecutive    RoomCategory = "executive"
	CategoryPresidential RoomCategory = "presidential"
)

var categoryLabels = map[RoomCategory]string{
	CategoryStandard:     "Standard Room",
	CategoryDeluxe:       "Deluxe Room",
	CategoryExecutive:    "Executive Suite",
	CategoryPresidential: "Presidential Suite",
}

func (c RoomCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c RoomCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Rate holds nightly prices in cents for one room category.
type Rate struct {
	BaseNightly    int64 `json:"base_nightly"`
	WeekendNightly int64 `json:"weekend_nightly"`
}

// RateTable maps room categories to their current nightly rates. The
// engine receives it per call; the catalog is the source of truth.
type RateTable map[RoomCategory]Rate

// NightlyRate looks up the applicable nightly price.
func (t RateTable) NightlyRate(category RoomCategory, weekend bool) (int64, error) {
	rate, ok := t[category]
	if !ok {
		return 0, ErrUnknownCategory
	}
	if weekend {
		return rate.WeekendNightly, nil
	}
	return rate.BaseNightly, nil
}
