package audit

import "time"

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp   time.Time `json:"timestamp"`
	Action      Action    `json:"action"`
	Country     string    `json:"country,omitempty"`
	Source      string    `json:"source,omitempty"`
	Count       int       `json:"count,omitempty"`
	ContentHash string    `json:"content_hash,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
	KeyID       string    `json:"key_id,omitempty"`
	Reason      string    `json:"reason,omitempty"`
}

type Action string

const (
	ActionIdentityGenerated Action = "identity_generated"
	ActionGeneratorFellBack Action = "generator_fell_back"
	ActionHistorySaved      Action = "history_saved"
	ActionHistoryDeleted    Action = "history_deleted"
	ActionKeyIssued         Action = "key_issued"
	ActionKeyRejected       Action = "key_rejected"
	ActionExternalServed    Action = "external_identity_served"
)

// Source values for identity generation events.
const (
	SourceSynth = "local"
	SourceModel = "model"
)
