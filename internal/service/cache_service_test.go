package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCacheRepo struct{}

func (failingCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	return errors.New("connection refused")
}

func (failingCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return errors.New("connection refused")
}

func (failingCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	return errors.New("connection refused")
}

func TestCacheServiceDisabled(t *testing.T) {
	var nilSvc *CacheService
	assert.False(t, nilSvc.Enabled())

	svc := NewCacheService(newCacheRepoStub(), nil, time.Minute, nil, false)
	hit, err := svc.Get(context.Background(), "k", &[]string{})
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, svc.Set(context.Background(), "k", "v", 0))
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newCacheRepoStub()
	svc := NewCacheService(repo, NewMetricsService(), time.Minute, nil, true)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "pta:a", []string{"x"}, 0))
	var out []string
	hit, err := svc.Get(ctx, "pta:a", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"x"}, out)

	require.NoError(t, svc.Invalidate(ctx, "pta:*"))
	hit, err = svc.Get(ctx, "pta:a", &out)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCacheServiceBackendFailureIsAMiss(t *testing.T) {
	svc := NewCacheService(failingCacheRepo{}, nil, 0, nil, true)

	hit, err := svc.Get(context.Background(), "k", &[]string{})
	assert.Error(t, err)
	assert.False(t, hit)
	assert.Error(t, svc.Invalidate(context.Background(), "k*"))
}
