package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/noah-isme/pta-api/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil)
	ctx := context.Background()

	var dest []string
	assert.ErrorIs(t, repo.Get(ctx, "pta:key", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "pta:key", []string{"a"}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "pta:*"))
}
