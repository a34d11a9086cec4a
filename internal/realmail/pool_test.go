package realmail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identikit/pkg/platform/sentinel"
)

func TestPoolRandomFromSeeds(t *testing.T) {
	ctx := context.Background()
	pool := NewPool()

	for i := 0; i < 20; i++ {
		email, err := pool.Random(ctx)
		require.NoError(t, err)
		assert.Contains(t, seedEmails, email)
	}
}

func TestPoolAddAndDuplicate(t *testing.T) {
	ctx := context.Background()
	pool := NewPool("first@example.com")

	require.NoError(t, pool.Add(ctx, "second@example.com"))
	err := pool.Add(ctx, "second@example.com")
	assert.ErrorIs(t, err, sentinel.ErrConflict)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		email, err := pool.Random(ctx)
		require.NoError(t, err)
		seen[email] = true
	}
	assert.Len(t, seen, 2)
}
