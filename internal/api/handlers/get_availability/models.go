package get_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	HoursResolved bool        `json:"hoursResolved"`
	Days          []DayBucket `json:"days"`
}

// DayBucket слоты одного дня, моменты в ISO-8601 UTC
type DayBucket struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]DayBucket, len(resp.Days))
	for i, d := range resp.Days {
		slots := make([]string, len(d.Slots))
		for j, s := range d.Slots {
			slots[j] = s.Instant.UTC().Format(time.RFC3339)
		}
		days[i] = DayBucket{Date: d.Date, Slots: slots}
	}

	return &AvailabilityResponse{
		HoursResolved: resp.HoursResolved,
		Days:          days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров.
// days по умолчанию 14, нечисловое значение тоже дает 14; диапазон ограничит use case
func ToUseCaseRequest(providerRef, daysStr string) *getAvailability.Request {
	days, err := strconv.Atoi(daysStr)
	if err != nil {
		days = domain.DefaultAvailabilityDays
	}

	return &getAvailability.Request{
		ProviderRef: providerRef,
		Days:        days,
	}
}
