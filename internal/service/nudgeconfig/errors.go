package nudgeconfig

import "errors"

var (
	// ErrMalformedPayload возвращается, когда payload события конфигурации не разбирается
	ErrMalformedPayload = errors.New("nudgeconfig: malformed config payload")

	// ErrConfigUnavailable возвращается, когда записанную конфигурацию не удалось прочитать
	ErrConfigUnavailable = errors.New("nudgeconfig: config unavailable")
)
