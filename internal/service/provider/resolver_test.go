package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
)

type fakeRepo struct {
	providers map[string]*domain.Provider
	err       error
}

func (f *fakeRepo) GetByRef(_ context.Context, ref string) (*domain.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	if p, ok := f.providers[ref]; ok {
		return p, nil
	}
	return nil, providerRepo.ErrProviderNotFound
}

func TestResolver_Resolve(t *testing.T) {
	p := &domain.Provider{ID: "id-1", Slug: "glow-studio"}
	r := NewResolver(&fakeRepo{providers: map[string]*domain.Provider{"glow-studio": p, "id-1": p}}, logger.NewNop())

	assert.Equal(t, "id-1", r.Resolve(context.Background(), "glow-studio"))
	assert.Equal(t, "id-1", r.Resolve(context.Background(), " id-1 "))
	assert.Equal(t, "p1", r.Resolve(context.Background(), "p1"))
}

func TestResolver_DirectoryDownUsesRef(t *testing.T) {
	r := NewResolver(&fakeRepo{err: errors.New("timeout")}, logger.NewNop())

	assert.Equal(t, "glow-studio", r.Resolve(context.Background(), "glow-studio"))
}
