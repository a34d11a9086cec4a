package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"identikit/internal/identity/models"
	"identikit/pkg/platform/sentinel"
)

// PostgresStore persists generation history in PostgreSQL.
type PostgresStore struct {
	db    *sql.DB
	clock Clock
}

// PostgresStoreOption configures a PostgresStore.
type PostgresStoreOption func(*PostgresStore)

// WithPostgresClock sets the clock function for testability.
func WithPostgresClock(clock Clock) PostgresStoreOption {
	return func(s *PostgresStore) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewPostgresStore constructs a PostgreSQL-backed history store.
func NewPostgresStore(db *sql.DB, opts ...PostgresStoreOption) *PostgresStore {
	s := &PostgresStore{
		db:    db,
		clock: time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// EnsureSchema creates the history table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS generation_history (
			id BIGSERIAL PRIMARY KEY,
			country TEXT,
			full_name TEXT,
			gender TEXT,
			birth_date TEXT,
			address TEXT,
			phone TEXT,
			email TEXT,
			occupation TEXT,
			national_id TEXT,
			passport_number TEXT,
			credit_card JSONB,
			bank_account TEXT,
			avatar_url TEXT,
			lifestyle_url TEXT,
			blockchain_hash TEXT UNIQUE,
			previous_hash TEXT,
			watermark TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensure history schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Save(ctx context.Context, entry *Entry) error {
	var card []byte
	if entry.CreditCard != nil {
		var err error
		card, err = json.Marshal(entry.CreditCard)
		if err != nil {
			return fmt.Errorf("marshal credit card: %w", err)
		}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.clock()
	}

	const insert = `
		INSERT INTO generation_history (
			country, full_name, gender, birth_date, address, phone, email,
			occupation, national_id, passport_number, credit_card, bank_account,
			avatar_url, lifestyle_url, blockchain_hash, previous_hash, watermark,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, insert,
		entry.Country, entry.FullName, entry.Gender, entry.BirthDate,
		entry.Address, entry.Phone, entry.Email, entry.Occupation,
		entry.NationalID, entry.PassportNumber, card, entry.BankAccount,
		entry.AvatarURL, entry.LifestyleURL, entry.BlockchainHash,
		entry.PreviousHash, entry.Watermark, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("save history entry: %w", err)
	}

	// Evict everything beyond the newest MaxEntries rows.
	const trim = `
		DELETE FROM generation_history
		WHERE id NOT IN (
			SELECT id FROM generation_history
			ORDER BY created_at DESC, id DESC
			LIMIT $1
		)
	`
	if _, err := s.db.ExecContext(ctx, trim, MaxEntries); err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

func (s *PostgresStore) Recent(ctx context.Context) ([]Entry, error) {
	cutoff := s.clock().AddDate(0, -RetentionMonths, 0)
	const query = `
		SELECT id, country, full_name, gender, birth_date, address, phone,
			email, occupation, national_id, passport_number, credit_card,
			bank_account, avatar_url, lifestyle_url, blockchain_hash,
			previous_hash, watermark, created_at
		FROM generation_history
		WHERE created_at >= $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := s.db.QueryContext(ctx, query, cutoff, ReadLimit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var card []byte
		if err := rows.Scan(
			&e.ID, &e.Country, &e.FullName, &e.Gender, &e.BirthDate,
			&e.Address, &e.Phone, &e.Email, &e.Occupation, &e.NationalID,
			&e.PassportNumber, &card, &e.BankAccount, &e.AvatarURL,
			&e.LifestyleURL, &e.BlockchainHash, &e.PreviousHash, &e.Watermark,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		if len(card) > 0 {
			var cc models.CreditCard
			if err := json.Unmarshal(card, &cc); err != nil {
				return nil, fmt.Errorf("decode credit card: %w", err)
			}
			e.CreditCard = &cc
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM generation_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete history entry: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) LastHash(ctx context.Context) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx, `
		SELECT blockchain_hash FROM generation_history
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read last hash: %w", err)
	}
	return hash, nil
}
