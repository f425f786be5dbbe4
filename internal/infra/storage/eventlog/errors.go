package eventlog

import "errors"

var (
	// ErrEventNotFound возвращается, когда подходящее событие не найдено
	ErrEventNotFound = errors.New("eventlog.repository: event not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("eventlog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("eventlog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("eventlog.repository: failed to scan row")

	// ErrInvalidEvent возвращается при попытке записать неполное событие
	ErrInvalidEvent = errors.New("eventlog.repository: invalid event")
)
