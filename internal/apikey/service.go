// Package apikey issues and verifies the keys that gate the external
// identity endpoint. A key is an HS256 JWT bound to the content hash of the
// data it was minted from, carried behind an sk_ prefix.
package apikey

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"identikit/internal/platform/metrics"
	dErrors "identikit/pkg/domain-errors"
)

// KeyPrefix marks issued keys so they are recognizable in configs and logs.
const KeyPrefix = "sk_"

// DefaultTTL is how long an issued key stays valid.
const DefaultTTL = 90 * 24 * time.Hour

// Claims bind a key to the content hash it was minted from.
type Claims struct {
	ContentHash string `json:"content_hash"`
	jwt.RegisteredClaims
}

// RevocationList tracks keys pulled before their natural expiry.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Service mints and checks API keys.
type Service struct {
	signingKey  []byte
	ttl         time.Duration
	revocations RevocationList
	metrics     *metrics.Metrics
	now         func() time.Time
}

type Option func(*Service)

func WithTTL(ttl time.Duration) Option {
	return func(s *Service) { s.ttl = ttl }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func NewService(signingKey string, revocations RevocationList, opts ...Option) *Service {
	s := &Service{
		signingKey:  []byte(signingKey),
		ttl:         DefaultTTL,
		revocations: revocations,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key is the result of an issuance.
type Key struct {
	APIKey      string
	ContentHash string
	ExpiresAt   time.Time
}

// ContentHash is the canonical digest binding a key to its source data.
func ContentHash(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

// Issue mints a key for the given data. The content hash travels inside the
// token so verification needs no key registry lookup.
func (s *Service) Issue(_ context.Context, data string) (Key, error) {
	if data == "" {
		return Key{}, dErrors.New(dErrors.CodeBadRequest, "data is required")
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	contentHash := ContentHash(data)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ContentHash: contentHash,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		return Key{}, dErrors.New(dErrors.CodeInternal, "failed to sign key")
	}

	return Key{
		APIKey:      KeyPrefix + signed,
		ContentHash: contentHash,
		ExpiresAt:   expiresAt,
	}, nil
}

// Verify checks prefix, signature, expiry, and the revocation list.
func (s *Service) Verify(ctx context.Context, key string) error {
	claims, err := s.parse(key)
	if err != nil {
		s.metrics.KeyVerification("rejected")
		return err
	}

	revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.metrics.KeyVerification("error")
		return dErrors.New(dErrors.CodeUnavailable, "revocation check failed")
	}
	if revoked {
		s.metrics.KeyVerification("revoked")
		return dErrors.New(dErrors.CodeUnauthorized, "key has been revoked")
	}

	s.metrics.KeyVerification("accepted")
	return nil
}

// Revoke pulls a key for the remainder of its lifetime. Revoking an already
// invalid key reports the parse failure.
func (s *Service) Revoke(ctx context.Context, key string) error {
	claims, err := s.parse(key)
	if err != nil {
		return err
	}
	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, ttl)
}

func (s *Service) parse(key string) (*Claims, error) {
	raw, ok := strings.CutPrefix(key, KeyPrefix)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "malformed key")
	}

	parsed, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "key has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid key")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid key claims")
	}
	return claims, nil
}
