package nudge_decision

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ProviderRef) == "" {
		return fmt.Errorf("%w: providerRef is required", ErrMissingParams)
	}
	return nil
}
