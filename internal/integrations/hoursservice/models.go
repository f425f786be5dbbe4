package hoursservice

import "encoding/json"

// WeeklyHours недельное расписание провайдера из сервиса рабочих часов
// Ключи Days: "0".."6" (воскресенье=0) или названия дней недели ("monday").
// Записи оставлены сырыми: каждая разбирается отдельно, чтобы одна битая
// запись не ломала всю неделю
type WeeklyHours struct {
	ProviderID string                     `json:"provider_id"`
	Days       map[string]json.RawMessage `json:"days"`
}

// DayEntry запись расписания на один день недели
// Часы приходят как произвольный JSON, проверка типов на стороне потребителя
type DayEntry struct {
	Closed    bool        `json:"closed"`
	StartHour interface{} `json:"start"`
	EndHour   interface{} `json:"end"`
}

// ErrorResponse модель ошибки от сервиса рабочих часов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
