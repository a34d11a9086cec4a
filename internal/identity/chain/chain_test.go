package chain

import (
	"context"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identikit/internal/identity/models"
	"identikit/internal/identity/synth"
)

func sampleRecord(t *testing.T) models.IdentityRecord {
	t.Helper()
	return synth.NewSeeded(99).Synthesize("US", "en")
}

func TestBuildWithDeterministic(t *testing.T) {
	rec := sampleRecord(t)

	a, err := BuildWith(rec, Genesis, "IDGEN-V2-0011223344556677")
	require.NoError(t, err)
	b, err := BuildWith(rec, Genesis, "IDGEN-V2-0011223344556677")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Regexp(t, `^[0-9a-f]{64}$`, a.ContentHash)
	assert.Equal(t, Genesis, a.PreviousHash)
}

func TestBuildSensitivity(t *testing.T) {
	rec := sampleRecord(t)
	base, err := BuildWith(rec, Genesis, "IDGEN-V2-0011223344556677")
	require.NoError(t, err)

	t.Run("record change", func(t *testing.T) {
		changed := rec
		changed.Email = "someone.else@example.com"
		link, err := BuildWith(changed, Genesis, "IDGEN-V2-0011223344556677")
		require.NoError(t, err)
		assert.NotEqual(t, base.ContentHash, link.ContentHash)
	})

	t.Run("previous hash change", func(t *testing.T) {
		link, err := BuildWith(rec, base.ContentHash, "IDGEN-V2-0011223344556677")
		require.NoError(t, err)
		assert.NotEqual(t, base.ContentHash, link.ContentHash)
	})

	t.Run("watermark change", func(t *testing.T) {
		link, err := BuildWith(rec, Genesis, "IDGEN-V2-ffeeddccbbaa9988")
		require.NoError(t, err)
		assert.NotEqual(t, base.ContentHash, link.ContentHash)
	})
}

func TestNewWatermarkFormat(t *testing.T) {
	re := regexp.MustCompile(`^IDGEN-V2-[0-9a-f]{16}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		w := NewWatermark()
		require.Regexp(t, re, w)
		require.False(t, seen[w], "watermarks must not repeat")
		seen[w] = true
	}
}

func TestChainLinearity(t *testing.T) {
	s := synth.NewSeeded(7)
	prev := Genesis
	for i := 0; i < 3; i++ {
		rec := s.Synthesize("JP", "ja")
		link, err := Build(rec, prev)
		require.NoError(t, err)
		assert.Equal(t, prev, link.PreviousHash)
		assert.True(t, Verify(rec, link))
		prev = link.ContentHash
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	rec := sampleRecord(t)
	link, err := Build(rec, Genesis)
	require.NoError(t, err)

	tampered := rec
	tampered.NationalID = "000-00-0000"
	assert.False(t, Verify(tampered, link))
}

func TestMemoryTipStoreCAS(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTipStore("")

	tip, err := store.Tip(ctx)
	require.NoError(t, err)
	assert.Equal(t, Genesis, tip)

	require.NoError(t, store.CommitTip(ctx, Genesis, "aaaa"))
	err = store.CommitTip(ctx, Genesis, "bbbb")
	assert.ErrorIs(t, err, ErrTipConflict)

	tip, err = store.Tip(ctx)
	require.NoError(t, err)
	assert.Equal(t, "aaaa", tip)
}

func TestMemoryTipStoreSeeded(t *testing.T) {
	store := NewMemoryTipStore("cafe")
	tip, err := store.Tip(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cafe", tip)
}

// Concurrent issuers retrying on conflict must produce one unbroken chain
// with no forks.
func TestConcurrentIssuanceDoesNotFork(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTipStore("")
	s := synth.NewSeeded(5)

	const workers = 8
	const perWorker = 5

	records := make([]models.IdentityRecord, workers*perWorker)
	for i := range records {
		records[i] = s.Synthesize("US", "en")
	}

	var mu sync.Mutex
	links := make(map[string]string) // contentHash -> previousHash

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				rec := records[w*perWorker+i]
				for {
					tip, err := store.Tip(ctx)
					require.NoError(t, err)
					link, err := Build(rec, tip)
					require.NoError(t, err)
					err = store.CommitTip(ctx, tip, link.ContentHash)
					if err == ErrTipConflict {
						continue
					}
					require.NoError(t, err)
					mu.Lock()
					links[link.ContentHash] = link.PreviousHash
					mu.Unlock()
					break
				}
			}
		}(w)
	}
	wg.Wait()

	require.Len(t, links, workers*perWorker)

	// Walk back from the final tip; every link must be reachable exactly once.
	tip, err := store.Tip(ctx)
	require.NoError(t, err)
	visited := 0
	for tip != Genesis {
		prev, ok := links[tip]
		require.True(t, ok, "tip %s not found in issued links", tip)
		delete(links, tip)
		tip = prev
		visited++
	}
	assert.Equal(t, workers*perWorker, visited)
	assert.Empty(t, links)
}
