// Package identity orchestrates identity issuance: pick a source, validate,
// link the record into the provenance chain, and optionally persist it.
package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
	"unicode"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"identikit/internal/audit"
	"identikit/internal/history"
	"identikit/internal/identity/chain"
	"identikit/internal/identity/models"
	"identikit/internal/identity/synth"
	"identikit/internal/platform/metrics"
	"identikit/internal/platform/middleware"
)

// Generator is an alternate identity source, typically an LLM. A nil
// Generator means local synthesis only.
type Generator interface {
	GenerateIdentity(ctx context.Context, country, language string) (models.IdentityRecord, error)
}

// tipRetries bounds how many compare-and-swap rounds one unit may consume
// before its issuance fails.
const tipRetries = 5

// defaultGeneratorTimeout caps one external generation attempt.
const defaultGeneratorTimeout = 10 * time.Second

// Service issues identity records.
type Service struct {
	synth     *synth.Synthesizer
	tips      chain.TipStore
	generator Generator
	store     history.Store
	publisher *audit.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	tracer    trace.Tracer

	generatorTimeout time.Duration
}

// Option configures optional service collaborators.
type Option func(*Service)

// WithGenerator attaches an external identity source. Its failures are
// absorbed by falling back to the local synthesizer.
func WithGenerator(g Generator) Option {
	return func(s *Service) { s.generator = g }
}

// WithHistory attaches the store used when a request asks to persist.
func WithHistory(store history.Store) Option {
	return func(s *Service) { s.store = store }
}

func WithAudit(p *audit.Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithGeneratorTimeout(d time.Duration) Option {
	return func(s *Service) { s.generatorTimeout = d }
}

func NewService(sy *synth.Synthesizer, tips chain.TipStore, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{
		synth:            sy,
		tips:             tips,
		logger:           logger,
		tracer:           otel.Tracer("identikit/identity"),
		generatorTimeout: defaultGeneratorTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateRequest describes one generation call.
type GenerateRequest struct {
	Country  string
	Language string
	Count    int
	Persist  bool
}

// UnitResult is the outcome for one requested unit: either an issued record
// with its provenance link, or an error. Units fail independently.
type UnitResult struct {
	Record models.IdentityRecord
	Link   chain.Link
	Source string
	Err    error
}

// Generate produces req.Count identity records. Candidates are built
// concurrently, but chain issuance serializes them against the shared tip so
// the chain stays linear. The returned slice always has req.Count elements in
// request order.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) []UnitResult {
	if req.Count < 1 {
		req.Count = 1
	}

	ctx, span := s.tracer.Start(ctx, "identity.Generate",
		trace.WithAttributes(
			attribute.String("identity.country", req.Country),
			attribute.Int("identity.count", req.Count),
		))
	defer span.End()

	units := make([]UnitResult, req.Count)

	g, gctx := errgroup.WithContext(ctx)
	for i := range units {
		g.Go(func() error {
			units[i].Record, units[i].Source = s.candidate(gctx, req.Country, req.Language)
			return nil
		})
	}
	// Candidate workers never return errors; fallback absorbs them.
	_ = g.Wait()

	for i := range units {
		if err := s.issue(ctx, &units[i], req); err != nil {
			units[i].Err = err
			span.RecordError(err)
			continue
		}
	}
	return units
}

// candidate produces one record, preferring the external generator when one
// is configured. Any generator failure falls back to local synthesis without
// surfacing to the caller.
func (s *Service) candidate(ctx context.Context, country, language string) (models.IdentityRecord, string) {
	if s.generator != nil {
		gctx, cancel := context.WithTimeout(ctx, s.generatorTimeout)
		rec, err := s.generator.GenerateIdentity(gctx, country, language)
		cancel()
		if err == nil {
			rec.Gender = normalizeGender(rec.Gender)
			err = Validate(rec, country)
		}
		if err == nil {
			attachAvatars(&rec)
			return rec, audit.SourceModel
		}
		s.metrics.GeneratorFallback()
		s.logger.DebugContext(ctx, "external generation fell back",
			slog.String("country", country),
			slog.String("error", err.Error()))
	}

	rec := s.synth.Synthesize(country, language)
	attachAvatars(&rec)
	return rec, audit.SourceSynth
}

// issue links one record into the chain and, when asked, persists it.
func (s *Service) issue(ctx context.Context, unit *UnitResult, req GenerateRequest) error {
	var committed bool
	for attempt := 0; attempt < tipRetries; attempt++ {
		tip, err := s.tips.Tip(ctx)
		if err != nil {
			return fmt.Errorf("read chain tip: %w", err)
		}
		link, err := chain.Build(unit.Record, tip)
		if err != nil {
			return fmt.Errorf("build chain link: %w", err)
		}
		err = s.tips.CommitTip(ctx, tip, link.ContentHash)
		if errors.Is(err, chain.ErrTipConflict) {
			s.metrics.ChainConflict()
			continue
		}
		if err != nil {
			return fmt.Errorf("commit chain tip: %w", err)
		}
		unit.Link = link
		committed = true
		break
	}
	if !committed {
		return fmt.Errorf("chain tip contention: gave up after %d attempts", tipRetries)
	}

	if req.Persist && s.store != nil {
		entry := entryFromUnit(req.Country, *unit)
		if err := s.store.Save(ctx, &entry); err != nil {
			return fmt.Errorf("persist record: %w", err)
		}
	}

	s.metrics.IdentityGenerated(req.Country, unit.Source)
	if s.publisher != nil {
		_ = s.publisher.Emit(ctx, audit.Event{
			Action:      audit.ActionIdentityGenerated,
			Country:     req.Country,
			Source:      unit.Source,
			ContentHash: unit.Link.ContentHash,
			RequestID:   middleware.GetRequestID(ctx),
		})
	}
	return nil
}

func entryFromUnit(country string, unit UnitResult) history.Entry {
	card := unit.Record.CreditCard
	return history.Entry{
		Country:        country,
		FullName:       unit.Record.FullName,
		Gender:         unit.Record.Gender,
		BirthDate:      unit.Record.BirthDate,
		Address:        unit.Record.Address,
		Phone:          unit.Record.Phone,
		Email:          unit.Record.Email,
		Occupation:     unit.Record.Occupation,
		NationalID:     unit.Record.NationalID,
		PassportNumber: unit.Record.PassportNumber,
		CreditCard:     &card,
		BankAccount:    unit.Record.BankAccount,
		AvatarURL:      unit.Record.AvatarURL,
		BlockchainHash: unit.Link.ContentHash,
		PreviousHash:   unit.Link.PreviousHash,
		Watermark:      unit.Link.Watermark,
	}
}

// normalizeGender upcases the first letter so records from loose sources
// compare equal to the canonical Male/Female values.
func normalizeGender(g string) string {
	if g == "" {
		return models.GenderMale
	}
	r, size := utf8.DecodeRuneInString(g)
	return string(unicode.ToUpper(r)) + g[size:]
}

var fallbackAvatars = []string{
	"https://placehold.co/512x512/ecf0f1/3498db?text=Professional",
	"https://placehold.co/512x512/f8f9fa/6c757d?text=Identity",
}

// attachAvatars sets the portrait URL plus a placeholder used when the
// portrait host is unavailable.
func attachAvatars(rec *models.IdentityRecord) {
	segment := "men"
	if rec.Gender == models.GenderFemale {
		segment = "women"
	}
	rec.AvatarURL = fmt.Sprintf("https://randomuser.me/api/portraits/%s/%d.jpg", segment, rand.Intn(100))
	rec.FallbackAvatarURL = fallbackAvatars[rand.Intn(len(fallbackAvatars))]
}
