package hours

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/hoursservice"
)

// Причины подстановки fallback, они же значения label в метриках
const (
	reasonFetchError     = "fetch_error"
	reasonNotConfigured  = "not_configured"
	reasonEmpty          = "empty"
	reasonMalformedEntry = "malformed_entry"
	reasonMissingEntry   = "missing_entry"
)

// mergeResult итог слияния ответа сервиса с fallback по дням
type mergeResult struct {
	week      domain.WeeklyHours
	malformed []int // дни недели с битой записью
	missing   []int // дни недели без записи
}

// mergeWeek накладывает записи провайдера на fallback {10,19} по каждому дню отдельно.
// Битая или отсутствующая запись заменяется fallback только для своего дня
func mergeWeek(payload *hoursservice.WeeklyHours) mergeResult {
	res := mergeResult{week: domain.FallbackWeek()}

	if payload == nil {
		for wd := 0; wd < 7; wd++ {
			res.missing = append(res.missing, wd)
		}
		return res
	}

	for wd := 0; wd < 7; wd++ {
		raw, ok := lookupDay(payload.Days, wd)
		if !ok {
			res.missing = append(res.missing, wd)
			continue
		}

		day, ok := parseDay(raw)
		if !ok {
			res.malformed = append(res.malformed, wd)
			continue
		}

		res.week.Days[wd] = day
		res.week.Configured = true
	}

	return res
}

// lookupDay ищет запись по числовому ключу, затем по названию дня недели
func lookupDay(days map[string]json.RawMessage, weekday int) (json.RawMessage, bool) {
	if raw, ok := days[strconv.Itoa(weekday)]; ok {
		return raw, true
	}
	name := strings.ToLower(time.Weekday(weekday).String())
	for key, raw := range days {
		if strings.ToLower(strings.TrimSpace(key)) == name {
			return raw, true
		}
	}
	return nil, false
}

// parseDay разбирает одну запись: closed=true, либо целые часы в [0,23] и start < end
func parseDay(raw json.RawMessage) (domain.DayHours, bool) {
	var entry hoursservice.DayEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return domain.DayHours{}, false
	}

	if entry.Closed {
		return domain.DayHours{Closed: true, Configured: true}, true
	}

	start, ok := wholeHour(entry.StartHour)
	if !ok {
		return domain.DayHours{}, false
	}
	end, ok := wholeHour(entry.EndHour)
	if !ok {
		return domain.DayHours{}, false
	}
	if !domain.ValidHours(start, end) {
		return domain.DayHours{}, false
	}

	return domain.DayHours{StartHour: start, EndHour: end, Configured: true}, true
}

// wholeHour принимает только JSON-число без дробной части
func wholeHour(v interface{}) (int, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < domain.MinHour || f > domain.MaxHour {
		return 0, false
	}
	return int(f), true
}
