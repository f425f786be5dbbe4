package hoursservice

import "errors"

var (
	// ErrHoursNotFound возвращается, когда у провайдера нет настроенного расписания
	ErrHoursNotFound = errors.New("hoursservice client: hours not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("hoursservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("hoursservice client: invalid response")
)
