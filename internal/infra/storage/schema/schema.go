package schema

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const providersTable = `CREATE TABLE IF NOT EXISTS providers (
		id            TEXT PRIMARY KEY,
		slug          TEXT NOT NULL UNIQUE,
		display_name  TEXT NOT NULL DEFAULT '',
		created_at_ms BIGINT NOT NULL
	)`

// seq задает порядок вставки и различает события с одинаковым logged_at_ms
const eventLogTable = `CREATE TABLE IF NOT EXISTS event_log (
		seq          %s,
		id           TEXT NOT NULL UNIQUE,
		provider_id  TEXT NOT NULL,
		event_type   TEXT NOT NULL,
		payload      TEXT NOT NULL DEFAULT '{}',
		logged_at_ms BIGINT NOT NULL
	)`

const eventLogIndex = `CREATE INDEX IF NOT EXISTS idx_event_log_provider_type_time
		ON event_log (provider_id, event_type, logged_at_ms)`

// seqColumn автоинкрементный первичный ключ под драйвер
var seqColumn = map[string]string{
	psqlbuilder.DriverPostgres: "BIGSERIAL PRIMARY KEY",
	psqlbuilder.DriverSQLite:   "INTEGER PRIMARY KEY AUTOINCREMENT",
}

// statements DDL журнала событий и каталога провайдеров.
// Время хранится в unix-миллисекундах, идентификаторы строками
func statements(driver string) ([]string, error) {
	seq, ok := seqColumn[driver]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported driver %q", ErrMigrate, driver)
	}
	return []string{
		providersTable,
		fmt.Sprintf(eventLogTable, seq),
		eventLogIndex,
	}, nil
}

// Apply создает таблицы и индексы, если их еще нет
func Apply(ctx context.Context, db dbmetrics.DBExecutor, driver string) error {
	stmts, err := statements(driver)
	if err != nil {
		return err
	}

	for i, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: statement %d: %v", ErrMigrate, i, err)
		}
	}
	return nil
}
