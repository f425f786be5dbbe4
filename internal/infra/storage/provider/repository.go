package provider

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

const table = "providers"

// Repository каталог провайдеров
type Repository struct {
	db DBExecutor
	sb squirrel.StatementBuilderType
}

// NewRepository создает новый экземпляр репозитория провайдеров
func NewRepository(db DBExecutor, sb squirrel.StatementBuilderType) *Repository {
	return &Repository{db: db, sb: sb}
}

// Create добавляет провайдера в каталог
func (r *Repository) Create(ctx context.Context, p domain.Provider) error {
	query, args, err := r.sb.Insert(table).
		Columns("id", "slug", "display_name", "created_at_ms").
		Values(p.ID, p.Slug, p.DisplayName, p.CreatedAt.UnixMilli()).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByRef ищет провайдера по внутреннему ID или по slug
func (r *Repository) GetByRef(ctx context.Context, ref string) (*domain.Provider, error) {
	query, args, err := r.sb.Select("id", "slug", "display_name", "created_at_ms").
		From(table).
		Where(squirrel.Or{
			squirrel.Eq{"id": ref},
			squirrel.Eq{"slug": ref},
		}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - build select query: %v", ErrBuildQuery, err)
	}

	var (
		p           domain.Provider
		createdAtMs int64
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Slug, &p.DisplayName, &createdAtMs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRef - scan provider: %v", ErrScanRow, err)
	}

	p.CreatedAt = time.UnixMilli(createdAtMs).UTC()

	return &p, nil
}
