package get_availability

import "errors"

// ErrMissingParams возвращается, когда не передан providerRef
var ErrMissingParams = errors.New("missing required params")
