package get_availability

import "github.com/m04kA/SMC-SchedulingService/internal/domain"

// Request модель запроса доступных слотов
type Request struct {
	ProviderRef string // slug или UUID провайдера
	Days        int    // горизонт в днях, ограничивается [1,30]
}

// Response модель ответа со слотами по дням
type Response struct {
	ProviderID    string
	HoursResolved bool              // расписание пришло от провайдера хотя бы для одного дня
	Days          []domain.DaySlots // ровно Days дней начиная с сегодняшнего
}

// SlotCount общее число слотов во всех днях
func (r *Response) SlotCount() int {
	total := 0
	for i := range r.Days {
		total += len(r.Days[i].Slots)
	}
	return total
}
