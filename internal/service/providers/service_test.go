package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	providerCache "github.com/m04kA/SMC-SchedulingService/internal/infra/cache/providers"
	providerRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/provider"
	"github.com/m04kA/SMC-SchedulingService/internal/service/providers/models"
)

type fakeProviderRepo struct {
	providers []*domain.Provider
	listErr   error
	listCalls int

	created    *domain.Provider
	disableErr error
}

func (f *fakeProviderRepo) Create(_ context.Context, p *domain.Provider) (*domain.Provider, error) {
	p.ID = "provider-new"
	p.Active = true
	f.created = p
	return p, nil
}

func (f *fakeProviderRepo) List(_ context.Context) ([]*domain.Provider, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.providers, nil
}

func (f *fakeProviderRepo) GetByID(_ context.Context, id string) (*domain.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, providerRepo.ErrProviderNotFound
}

func (f *fakeProviderRepo) Exists(_ context.Context, id string) (bool, error) {
	for _, p := range f.providers {
		if p.ID == id && p.Active {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProviderRepo) Disable(_ context.Context, _ string) error {
	return f.disableErr
}

type fakeCache struct {
	cached []*domain.Provider
	getErr error

	setCalls        int
	invalidateCalls int
}

func (f *fakeCache) GetList(_ context.Context) ([]*domain.Provider, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cached, nil
}

func (f *fakeCache) SetList(_ context.Context, providers []*domain.Provider) error {
	f.setCalls++
	f.cached = providers
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context) error {
	f.invalidateCalls++
	f.cached = nil
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func activeProviders() []*domain.Provider {
	return []*domain.Provider{
		{ID: "provider-1", Name: "Anna", AvatarURL: "https://cdn.example.com/anna.png", Active: true},
		{ID: "provider-2", Name: "Boris", Active: true},
	}
}

func TestList_WithoutCache(t *testing.T) {
	repo := &fakeProviderRepo{providers: activeProviders()}
	svc := NewService(repo, nil, noopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Providers, 2)
	assert.Equal(t, "provider-1", resp.Providers[0].ID)
	assert.Equal(t, "Anna", resp.Providers[0].Name)
}

func TestList_CacheMissWarmsCache(t *testing.T) {
	repo := &fakeProviderRepo{providers: activeProviders()}
	cache := &fakeCache{getErr: providerCache.ErrCacheMiss}
	svc := NewService(repo, cache, noopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Providers, 2)
	assert.Equal(t, 1, repo.listCalls)
	assert.Equal(t, 1, cache.setCalls)
}

func TestList_CacheHitSkipsRepository(t *testing.T) {
	repo := &fakeProviderRepo{providers: activeProviders()}
	cache := &fakeCache{cached: activeProviders()}
	svc := NewService(repo, cache, noopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Providers, 2)
	assert.Zero(t, repo.listCalls)
}

func TestList_CacheUnavailableDegradesToRepository(t *testing.T) {
	repo := &fakeProviderRepo{providers: activeProviders()}
	cache := &fakeCache{getErr: providerCache.ErrCacheUnavailable}
	svc := NewService(repo, cache, noopLogger{})

	resp, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, resp.Providers, 2)
	assert.Equal(t, 1, repo.listCalls)
}

func TestList_RepositoryError(t *testing.T) {
	repo := &fakeProviderRepo{listErr: errors.New("connection refused")}
	svc := NewService(repo, nil, noopLogger{})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExists(t *testing.T) {
	repo := &fakeProviderRepo{providers: activeProviders()}
	svc := NewService(repo, nil, noopLogger{})

	exists, err := svc.Exists(context.Background(), "provider-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = svc.Exists(context.Background(), "ghost")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRegister(t *testing.T) {
	t.Run("registers and invalidates cache", func(t *testing.T) {
		repo := &fakeProviderRepo{}
		cache := &fakeCache{}
		svc := NewService(repo, cache, noopLogger{})

		resp, err := svc.Register(context.Background(), &models.RegisterProviderRequest{
			Name:      "  Clara  ",
			AvatarURL: "https://cdn.example.com/clara.png",
		})

		require.NoError(t, err)
		assert.Equal(t, "provider-new", resp.ID)
		assert.Equal(t, "Clara", repo.created.Name)
		assert.Equal(t, 1, cache.invalidateCalls)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		svc := NewService(&fakeProviderRepo{}, nil, noopLogger{})

		_, err := svc.Register(context.Background(), &models.RegisterProviderRequest{Name: "   "})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestDisable(t *testing.T) {
	t.Run("disables and invalidates cache", func(t *testing.T) {
		cache := &fakeCache{cached: activeProviders()}
		svc := NewService(&fakeProviderRepo{}, cache, noopLogger{})

		err := svc.Disable(context.Background(), "provider-1")

		require.NoError(t, err)
		assert.Equal(t, 1, cache.invalidateCalls)
	})

	t.Run("unknown provider", func(t *testing.T) {
		repo := &fakeProviderRepo{disableErr: providerRepo.ErrProviderNotFound}
		svc := NewService(repo, nil, noopLogger{})

		err := svc.Disable(context.Background(), "ghost")

		assert.ErrorIs(t, err, ErrProviderNotFound)
	})
}
