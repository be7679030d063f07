package pricing

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error every malformed-input failure wraps,
// so callers can catch the whole class with errors.Is.
var ErrValidation = errors.New("invalid quote input")

var (
	ErrInvalidRange    = fmt.Errorf("%w: check-out must be after check-in", ErrValidation)
	ErrStayTooLong     = fmt.Errorf("%w: stay cannot exceed 30 nights", ErrValidation)
	ErrUnknownCategory = fmt.Errorf("%w: unknown room category", ErrValidation)
	ErrUnknownAddOn    = fmt.Errorf("%w: unknown add-on service", ErrValidation)
	ErrDuplicateAddOn  = fmt.Errorf("%w: add-on selected more than once", ErrValidation)
	ErrNoGuests        = fmt.Errorf("%w: at least one guest is required", ErrValidation)
	ErrRoomQuantity    = fmt.Errorf("%w: room quantity must be at least 1", ErrValidation)
	ErrNegativePoints  = fmt.Errorf("%w: loyalty points cannot be negative", ErrValidation)
	ErrUnknownPayment  = fmt.Errorf("%w: unknown payment method", ErrValidation)
)
