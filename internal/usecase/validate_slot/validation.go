package validate_slot

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// naiveLayouts форматы без смещения, трактуются как время в IST
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// validateRequest валидирует наличие параметров
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProviderRef) == "" {
		return fmt.Errorf("%w: providerRef is required", ErrMissingParams)
	}
	if strings.TrimSpace(req.SlotISO) == "" {
		return fmt.Errorf("%w: slotISO is required", ErrMissingParams)
	}
	return nil
}

// parseSlot разбирает RFC 3339 (с дробными секундами или без),
// а также локальное время без смещения в IST
func parseSlot(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, value, domain.ReferenceLocation); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlot, value)
}
