package validate_slot

import "errors"

var (
	// ErrMissingParams возвращается, когда не передан providerRef или slotISO
	ErrMissingParams = errors.New("missing required params")

	// ErrInvalidSlot возвращается, когда slotISO не разбирается как момент времени
	ErrInvalidSlot = errors.New("invalid slot timestamp")
)
