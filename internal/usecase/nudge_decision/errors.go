package nudge_decision

import "errors"

// ErrMissingParams возвращается, когда не передан providerRef
var ErrMissingParams = errors.New("missing required params")
