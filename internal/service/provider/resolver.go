package provider

import (
	"context"
	"errors"
	"strings"

	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
)

// Resolver переводит внешний providerRef (slug или UUID) во внутренний ID
type Resolver struct {
	repo   ProviderRepository
	logger Logger
}

// NewResolver создает новый экземпляр резолвера провайдеров
func NewResolver(repo ProviderRepository, logger Logger) *Resolver {
	return &Resolver{
		repo:   repo,
		logger: logger,
	}
}

// Resolve возвращает внутренний ID провайдера.
// Неизвестный ref и ошибки каталога дают сам ref: дальше часы уйдут в fallback,
// а счетчик прочитает журнал по исходному ключу
func (r *Resolver) Resolve(ctx context.Context, ref string) string {
	ref = strings.TrimSpace(ref)

	p, err := r.repo.GetByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			r.logger.Info("Resolve: provider ref=%s not in directory, using ref as id", ref)
		} else {
			r.logger.Warn("Resolve: directory lookup failed for ref=%s, using ref as id: %v", ref, err)
		}
		return ref
	}

	return p.ID
}
