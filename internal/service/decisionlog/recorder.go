package decisionlog

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Результаты записи, значения label в метриках
const (
	resultOK      = "ok"
	resultError   = "error"
	resultDropped = "dropped"
)

// Recorder фоновая best-effort запись решений nudge_decision в журнал.
// Запись не блокирует ответ и не влияет на решение
type Recorder struct {
	writer  EventLogWriter
	metrics Metrics
	logger  Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewRecorder создает новый экземпляр фоновой записи решений
func NewRecorder(writer EventLogWriter, metrics Metrics, logger Logger, timeout time.Duration) *Recorder {
	return &Recorder{
		writer:  writer,
		metrics: metrics,
		logger:  logger,
		timeout: timeout,
	}
}

// Record ставит запись решения в фон и сразу возвращается.
// Отмена ctx запроса не прерывает запись, у нее свой таймаут
func (r *Recorder) Record(ctx context.Context, providerID string, decision domain.NudgeDecision) {
	payload, err := json.Marshal(domain.NudgeDecisionPayload{
		Allowed:    decision.Allowed,
		IsQuiet:    decision.IsQuiet,
		Remaining:  decision.Remaining,
		SentToday:  decision.SentToday,
		QuietStart: decision.Config.QuietStart,
		QuietEnd:   decision.Config.QuietEnd,
		Cap:        decision.Config.DailyCap,
		Degraded:   decision.Degraded,
	})
	if err != nil {
		r.logger.Error("Record: failed to encode decision for provider=%s: %v", providerID, err)
		r.metrics.IncEventLogAppend(resultError)
		return
	}

	event := domain.Event{
		ID:         uuid.NewString(),
		ProviderID: providerID,
		Type:       domain.EventNudgeDecision,
		Payload:    payload,
		LoggedAt:   decision.DecidedAt,
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		r.logger.Warn("Record: recorder closed, dropping decision event for provider=%s", providerID)
		r.metrics.IncEventLogAppend(resultDropped)
		return
	}
	r.wg.Add(1)
	r.mu.Unlock()

	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.timeout)

	go func() {
		defer r.wg.Done()
		defer cancel()

		if err := r.writer.Append(appendCtx, event); err != nil {
			r.logger.Warn("Record: failed to append decision event id=%s for provider=%s: %v", event.ID, providerID, err)
			r.metrics.IncEventLogAppend(resultError)
			return
		}
		r.metrics.IncEventLogAppend(resultOK)
	}()
}

// Close перестает принимать новые записи и дожидается начатых
func (r *Recorder) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()

	r.wg.Wait()
}
