package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const table = "event_log"

// Repository append-only журнал доменных событий
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория журнала событий
// sb определяет формат плейсхолдеров под драйвер (см. psqlbuilder)
func NewRepository(db DBExecutor, sb squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, sb: sb}
}

// Append добавляет событие в журнал
func (r *Repository) Append(ctx context.Context, event domain.Event) error {
	if event.ID == "" || event.ProviderID == "" || event.Type == "" {
		return fmt.Errorf("%w: Append - id, provider_id and type are required", ErrInvalidEvent)
	}

	payload := string(event.Payload)
	if payload == "" {
		payload = "{}"
	}

	query, args, err := r.sb.Insert(table).
		Columns("id", "provider_id", "event_type", "payload", "logged_at_ms").
		Values(event.ID, event.ProviderID, string(event.Type), payload, event.LoggedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CountSince считает события указанных типов провайдера с logged_at >= since
func (r *Repository) CountSince(ctx context.Context, providerID string, types []domain.EventType, since time.Time) (int, error) {
	if len(types) == 0 {
		return 0, nil
	}

	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	query, args, err := r.sb.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"provider_id": providerID}).
		Where(squirrel.Eq{"event_type": typeNames}).
		Where(squirrel.GtOrEq{"logged_at_ms": since.UnixMilli()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountSince - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountSince - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// LatestByType возвращает последнее по времени событие указанного типа.
// При равном logged_at_ms побеждает вставленное позже
func (r *Repository) LatestByType(ctx context.Context, providerID string, eventType domain.EventType) (*domain.Event, error) {
	query, args, err := r.sb.Select("id", "provider_id", "event_type", "payload", "logged_at_ms").
		From(table).
		Where(squirrel.Eq{"provider_id": providerID, "event_type": string(eventType)}).
		OrderBy("logged_at_ms DESC", "seq DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LatestByType - build select query: %v", ErrBuildQuery, err)
	}

	var (
		event      domain.Event
		typeName   string
		payload    string
		loggedAtMs int64
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&event.ID,
		&event.ProviderID,
		&typeName,
		&payload,
		&loggedAtMs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LatestByType - scan event: %v", ErrScanRow, err)
	}

	event.Type = domain.EventType(typeName)
	event.Payload = []byte(payload)
	event.LoggedAt = time.UnixMilli(loggedAtMs).UTC()

	return &event, nil
}
