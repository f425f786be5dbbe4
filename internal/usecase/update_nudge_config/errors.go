package update_nudge_config

import "errors"

var (
	// ErrMissingParams возвращается, когда не передано одно из обязательных полей
	ErrMissingParams = errors.New("missing required params")

	// ErrInvalidConfig возвращается, когда значения вне допустимых диапазонов
	ErrInvalidConfig = errors.New("invalid nudge config")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
