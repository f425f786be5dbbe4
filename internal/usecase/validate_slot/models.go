package validate_slot

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Request модель запроса проверки слота
type Request struct {
	ProviderRef string
	SlotISO     string // ISO-8601 момент начала слота
}

// Response результат проверки. Отказ по времени или часам не ошибка, а значение
type Response struct {
	ProviderID    string
	HoursResolved bool
	Verdict       domain.SlotVerdict
}
