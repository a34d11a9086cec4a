package identity

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"identikit/internal/audit"
	"identikit/internal/history"
	"identikit/internal/identity/chain"
	"identikit/internal/identity/models"
	"identikit/internal/identity/synth"
)

type stubGenerator struct {
	rec   models.IdentityRecord
	err   error
	calls int
}

func (g *stubGenerator) GenerateIdentity(_ context.Context, _, _ string) (models.IdentityRecord, error) {
	g.calls++
	return g.rec, g.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLocalService(opts ...Option) *Service {
	return NewService(synth.NewSeeded(7), chain.NewMemoryTipStore(""), testLogger(), opts...)
}

func TestGenerateLocalBatchChainsLinearly(t *testing.T) {
	svc := newLocalService()

	units := svc.Generate(context.Background(), GenerateRequest{Country: "US", Language: "en", Count: 3})
	require.Len(t, units, 3)

	prev := chain.Genesis
	for _, unit := range units {
		require.NoError(t, unit.Err)
		assert.Equal(t, audit.SourceSynth, unit.Source)
		assert.Equal(t, prev, unit.Link.PreviousHash)
		assert.True(t, chain.Verify(unit.Record, unit.Link))
		prev = unit.Link.ContentHash
	}
}

func TestGenerateDefaultsCountToOne(t *testing.T) {
	svc := newLocalService()

	units := svc.Generate(context.Background(), GenerateRequest{Country: "CN"})
	require.Len(t, units, 1)
	require.NoError(t, units[0].Err)
	assert.NotEmpty(t, units[0].Record.FullName)
}

func TestGenerateAttachesAvatars(t *testing.T) {
	svc := newLocalService()

	units := svc.Generate(context.Background(), GenerateRequest{Country: "JP"})
	require.NoError(t, units[0].Err)
	assert.Regexp(t, `^https://randomuser\.me/api/portraits/(men|women)/\d{1,2}\.jpg$`, units[0].Record.AvatarURL)
	assert.Contains(t, units[0].Record.FallbackAvatarURL, "placehold.co")
}

func TestGenerateUsesGeneratorWhenValid(t *testing.T) {
	gen := &stubGenerator{rec: models.IdentityRecord{
		FullName:       "John Smith",
		Gender:         "male",
		BirthDate:      "1982-03-20",
		Address:        "123 Main St, New York, NY 10001",
		Phone:          "(212) 555-1234",
		Email:          "john.smith@example.com",
		Occupation:     "Software Engineer",
		NationalID:     "123-45-6789",
		PassportNumber: "12345678",
		CreditCard:     models.CreditCard{Number: "4111111111111111", Expiry: "05/29", CVV: "123", Type: "Visa"},
	}}
	svc := newLocalService(WithGenerator(gen))

	units := svc.Generate(context.Background(), GenerateRequest{Country: "US", Count: 1})
	require.NoError(t, units[0].Err)
	assert.Equal(t, audit.SourceModel, units[0].Source)
	assert.Equal(t, "John Smith", units[0].Record.FullName)
	assert.Equal(t, models.GenderMale, units[0].Record.Gender, "gender is normalized")
	assert.Equal(t, 1, gen.calls)
}

func TestGenerateFallsBackOnGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("upstream down")}
	svc := newLocalService(WithGenerator(gen))

	units := svc.Generate(context.Background(), GenerateRequest{Country: "US", Count: 2})
	for _, unit := range units {
		require.NoError(t, unit.Err)
		assert.Equal(t, audit.SourceSynth, unit.Source)
		assert.NotEmpty(t, unit.Record.FullName)
	}
	assert.Equal(t, 2, gen.calls)
}

func TestGenerateFallsBackOnInvalidRecord(t *testing.T) {
	// Record is missing almost everything; validation must reject it.
	gen := &stubGenerator{rec: models.IdentityRecord{FullName: "Ghost"}}
	svc := newLocalService(WithGenerator(gen))

	units := svc.Generate(context.Background(), GenerateRequest{Country: "US"})
	require.NoError(t, units[0].Err)
	assert.Equal(t, audit.SourceSynth, units[0].Source)
}

func TestGeneratePersistsWhenAsked(t *testing.T) {
	store := history.NewMemoryStore()
	svc := newLocalService(WithHistory(store))

	units := svc.Generate(context.Background(), GenerateRequest{Country: "CN", Count: 2, Persist: true})
	for _, unit := range units {
		require.NoError(t, unit.Err)
	}

	entries, err := store.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Recent is newest first; the later unit leads.
	assert.Equal(t, units[1].Link.ContentHash, entries[0].BlockchainHash)
	assert.Equal(t, units[0].Link.ContentHash, entries[1].BlockchainHash)
	assert.Equal(t, "CN", entries[0].Country)
}

func TestGenerateSkipsPersistByDefault(t *testing.T) {
	store := history.NewMemoryStore()
	svc := newLocalService(WithHistory(store))

	units := svc.Generate(context.Background(), GenerateRequest{Country: "CN"})
	require.NoError(t, units[0].Err)

	entries, err := store.Recent(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

type failingStore struct {
	history.Store
}

func (failingStore) Save(context.Context, *history.Entry) error {
	return errors.New("disk full")
}

func TestGeneratePersistFailureIsPerUnit(t *testing.T) {
	svc := newLocalService(WithHistory(failingStore{}))

	units := svc.Generate(context.Background(), GenerateRequest{Country: "US", Count: 2, Persist: true})
	for _, unit := range units {
		require.Error(t, unit.Err)
		assert.Contains(t, unit.Err.Error(), "persist record")
	}
}

func TestGenerateEmitsAuditEvents(t *testing.T) {
	pub := audit.NewPublisher(audit.NewMemoryStore())
	svc := newLocalService(WithAudit(pub))

	units := svc.Generate(context.Background(), GenerateRequest{Country: "GB", Count: 2})
	for _, unit := range units {
		require.NoError(t, unit.Err)
	}

	events, err := pub.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, audit.ActionIdentityGenerated, events[0].Action)
	assert.Equal(t, "GB", events[0].Country)
	assert.Equal(t, units[0].Link.ContentHash, events[0].ContentHash)
}

func TestNormalizeGender(t *testing.T) {
	assert.Equal(t, "Male", normalizeGender("male"))
	assert.Equal(t, "Female", normalizeGender("Female"))
	assert.Equal(t, "Male", normalizeGender(""))

	// Non-Latin values must survive intact, not lose bytes to the upcasing.
	assert.Equal(t, "女", normalizeGender("女"))
	assert.Equal(t, "Éva", normalizeGender("éva"))
}
