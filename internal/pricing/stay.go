package pricing

import "time"

// Stay is the immutable guest selection a quote is computed from.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
	Category RoomCategory
	Rooms    int
	Adults   int
	Children int
}

func (s Stay) validate(maxNights int) (nights int, err error) {
	nights, err = Nights(s.CheckIn, s.CheckOut)
	if err != nil {
		return 0, err
	}
	if nights > maxNights {
		return 0, ErrStayTooLong
	}
	if !s.Category.Valid() {
		return 0, ErrUnknownCategory
	}
	if s.Rooms < 1 {
		return 0, ErrRoomQuantity
	}
	if s.Adults < 0 || s.Children < 0 || s.Adults+s.Children == 0 {
		return 0, ErrNoGuests
	}
	return nights, nil
}
