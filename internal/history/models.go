// Package history keeps a capped rolling log of issued identities together
// with their provenance links.
package history

import (
	"time"

	"identikit/internal/identity/models"
)

// Entry is one persisted generation. JSON names follow the wire format the
// history endpoints expose.
type Entry struct {
	ID             int64              `json:"id"`
	Country        string             `json:"country"`
	FullName       string             `json:"full_name"`
	Gender         string             `json:"gender"`
	BirthDate      string             `json:"birth_date"`
	Address        string             `json:"address"`
	Phone          string             `json:"phone"`
	Email          string             `json:"email"`
	Occupation     string             `json:"occupation"`
	NationalID     string             `json:"national_id"`
	PassportNumber string             `json:"passport_number"`
	CreditCard     *models.CreditCard `json:"credit_card,omitempty"`
	BankAccount    string             `json:"bank_account"`
	AvatarURL      string             `json:"avatar_url,omitempty"`
	LifestyleURL   string             `json:"lifestyle_url,omitempty"`
	BlockchainHash string             `json:"blockchain_hash"`
	PreviousHash   string             `json:"previous_hash"`
	Watermark      string             `json:"watermark"`
	CreatedAt      time.Time          `json:"created_at"`
}

const (
	// MaxEntries caps the rolling log; saving past the cap evicts the oldest
	// rows.
	MaxEntries = 30

	// ReadLimit caps a single Recent read.
	ReadLimit = 50

	// RetentionMonths is how far back Recent reaches.
	RetentionMonths = 3
)
