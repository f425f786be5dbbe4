package validate_slot

import (
	validateSlot "github.com/m04kA/SMC-SchedulingService/internal/usecase/validate_slot"
)

// AcceptedResponse слот принят
type AcceptedResponse struct {
	OK            bool `json:"ok"`
	HoursResolved bool `json:"hoursResolved"`
	WithinHours   bool `json:"withinHours"`
}

// RejectedResponse слот отклонен по времени или рабочим часам
type RejectedResponse struct {
	OK     bool         `json:"ok"`
	Error  string       `json:"error"`
	Detail *HoursDetail `json:"detail,omitempty"`
}

// HoursDetail окно рабочих часов дня недели слота
type HoursDetail struct {
	Weekday   int  `json:"weekday"`
	StartHour int  `json:"startHour"`
	EndHour   int  `json:"endHour"`
	Closed    bool `json:"closed,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *validateSlot.Response) interface{} {
	v := resp.Verdict
	if v.Accepted {
		return &AcceptedResponse{
			OK:            true,
			HoursResolved: resp.HoursResolved,
			WithinHours:   true,
		}
	}

	rejected := &RejectedResponse{OK: false, Error: string(v.Reason)}
	if v.IsOutOfHours() {
		rejected.Detail = &HoursDetail{
			Weekday:   v.Weekday,
			StartHour: v.Hours.StartHour,
			EndHour:   v.Hours.EndHour,
			Closed:    v.Hours.Closed,
		}
	}
	return rejected
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(providerRef, slotISO string) *validateSlot.Request {
	return &validateSlot.Request{
		ProviderRef: providerRef,
		SlotISO:     slotISO,
	}
}
