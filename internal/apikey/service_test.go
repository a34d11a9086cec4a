package apikey

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSigningKey = "test-signing-key-not-for-production"

func newTestService(now *time.Time, opts ...Option) *Service {
	clock := func() time.Time { return *now }
	list := NewMemoryRevocationList(WithMemoryClock(clock))
	opts = append(opts, WithClock(clock))
	return NewService(testSigningKey, list, opts...)
}

func TestIssueAndVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&now)

	key, err := svc.Issue(context.Background(), `{"agent":"openclaw"}`)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key.APIKey, KeyPrefix))
	assert.Equal(t, now.Add(DefaultTTL), key.ExpiresAt)

	sum := sha256.Sum256([]byte(`{"agent":"openclaw"}`))
	assert.Equal(t, hex.EncodeToString(sum[:]), key.ContentHash)

	require.NoError(t, svc.Verify(context.Background(), key.APIKey))
}

func TestIssueRequiresData(t *testing.T) {
	now := time.Now()
	svc := newTestService(&now)

	_, err := svc.Issue(context.Background(), "")
	require.Error(t, err)
}

func TestVerifyRejectsMalformedKeys(t *testing.T) {
	now := time.Now()
	svc := newTestService(&now)

	assert.Error(t, svc.Verify(context.Background(), "not-a-key"))
	assert.Error(t, svc.Verify(context.Background(), KeyPrefix+"garbage.token.here"))
}

func TestVerifyRejectsExpiredKey(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&now)

	key, err := svc.Issue(context.Background(), "payload")
	require.NoError(t, err)

	now = now.Add(DefaultTTL + time.Hour)
	err = svc.Verify(context.Background(), key.APIKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	other := NewService("some-other-signing-key", NewMemoryRevocationList(), WithClock(func() time.Time { return now }))
	key, err := other.Issue(context.Background(), "payload")
	require.NoError(t, err)

	svc := newTestService(&now)
	assert.Error(t, svc.Verify(context.Background(), key.APIKey))
}

func TestRevokeBlocksVerification(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(&now)

	key, err := svc.Issue(context.Background(), "payload")
	require.NoError(t, err)
	require.NoError(t, svc.Verify(context.Background(), key.APIKey))

	require.NoError(t, svc.Revoke(context.Background(), key.APIKey))

	err = svc.Verify(context.Background(), key.APIKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revoked")
}

func TestRevocationLapsesWithKeyExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	list := NewMemoryRevocationList(WithMemoryClock(clock))
	svc := NewService(testSigningKey, list, WithClock(clock), WithTTL(time.Hour))

	key, err := svc.Issue(context.Background(), "payload")
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(context.Background(), key.APIKey))

	revoked, err := list.IsRevoked(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, revoked)

	// After the key's own expiry the revocation entry is moot.
	now = now.Add(2 * time.Hour)
	err = svc.Verify(context.Background(), key.APIKey)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestContentHashIsStable(t *testing.T) {
	assert.Equal(t, ContentHash("abc"), ContentHash("abc"))
	assert.NotEqual(t, ContentHash("abc"), ContentHash("abd"))
	assert.Len(t, ContentHash("abc"), 64)
}
