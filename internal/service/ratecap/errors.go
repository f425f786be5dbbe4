package ratecap

import "errors"

// ErrCountUnavailable возвращается, когда журнал событий не удалось прочитать
var ErrCountUnavailable = errors.New("ratecap: send count unavailable")
