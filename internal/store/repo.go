package store

import (
	"context"
	"fmt"
	"time"
)

// StorageError wraps a local persistence failure. Callers are expected to
// degrade gracefully: fall back to defaults on read, report on write.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// BadgeData is a persisted badge snapshot: a copy of a catalog entry plus
// the unlock time. Extending the catalog never mutates stored snapshots.
type BadgeData struct {
	ID          string            `json:"id"`
	Icon        string            `json:"icon"`
	Name        map[string]string `json:"name"`
	Description map[string]string `json:"description"`
	Condition   string            `json:"condition"`
	UnlockedAt  time.Time         `json:"unlockedAt"`
}

// ProfileRecord is the single learner's gamification state.
type ProfileRecord struct {
	XP         int
	Level      int
	Badges     []BadgeData
	Streak     int
	LastActive time.Time
}

// DefaultProfile returns the state a fresh installation starts with.
func DefaultProfile() *ProfileRecord {
	return &ProfileRecord{
		XP:         0,
		Level:      1,
		Badges:     nil,
		Streak:     0,
		LastActive: time.Now(),
	}
}

// ProfileRepo manages the singleton profile row.
type ProfileRepo interface {
	// Load returns the stored profile, or a freshly initialized default
	// profile if none exists. Absence is not an error.
	Load(ctx context.Context) (*ProfileRecord, error)

	// Save overwrites the stored profile in a single statement.
	Save(ctx context.Context, p *ProfileRecord) error
}

// ActionKind is the category of a completed task that feeds achievements.
type ActionKind string

const (
	ActionSummary ActionKind = "summary"
	ActionQuiz    ActionKind = "quiz"
	ActionPlan    ActionKind = "plan"
)

// ActionStatsRecord counts completed actions per kind.
type ActionStatsRecord struct {
	Summary int
	Quiz    int
	Plan    int
}

// Count returns the counter for the given kind.
func (r *ActionStatsRecord) Count(kind ActionKind) int {
	switch kind {
	case ActionSummary:
		return r.Summary
	case ActionQuiz:
		return r.Quiz
	case ActionPlan:
		return r.Plan
	}
	return 0
}

// StatsRepo manages the singleton action counter row.
type StatsRepo interface {
	// Load returns the stored counters, all zero if none exist.
	Load(ctx context.Context) (*ActionStatsRecord, error)

	// Increment adds one to the counter for kind, persists, and returns
	// the updated record.
	Increment(ctx context.Context, kind ActionKind) (*ActionStatsRecord, error)
}

// Category selects one of the two bounded history lists.
type Category string

const (
	CategorySummary Category = "summary"
	CategoryQuiz    Category = "quiz"
)

// HistoryKeep is the retention cap per category, most-recent-first.
const HistoryKeep = 20

// HistoryRecord is a saved past result.
type HistoryRecord struct {
	ID        string
	Category  Category
	Title     string
	Payload   map[string]any
	CreatedAt time.Time
}

// HistoryRepo manages the bounded per-category result lists.
type HistoryRepo interface {
	// Save inserts rec and prunes the category beyond HistoryKeep entries.
	Save(ctx context.Context, rec HistoryRecord) error

	// List returns the category's entries most-recent-first. Entries whose
	// stored payload fails to decode are skipped, not surfaced as errors.
	List(ctx context.Context, cat Category) ([]HistoryRecord, error)

	// DeleteAt removes the entry at index in most-recent-first order.
	// An out-of-range index is a no-op.
	DeleteAt(ctx context.Context, cat Category, index int) error
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose label ("" = all)
}

// LLMRequestEventData captures the data for a single gateway call event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored gateway call event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose label.
type LLMUsageStats struct {
	Purpose      string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// ModelUsageStats aggregates token usage per model.
type ModelUsageStats struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to gateway call events.
type EventRepo interface {
	// AppendLLMRequest records a gateway call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest-first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// UsageByPurpose aggregates request counts and token usage per purpose.
	UsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// UsageByModel aggregates request counts and token usage per model.
	UsageByModel(ctx context.Context) ([]ModelUsageStats, error)
}

// PreferenceRepo manages per-installation settings.
type PreferenceRepo interface {
	// Language returns the stored language code, "" if none stored.
	Language(ctx context.Context) (string, error)

	// SetLanguage persists the language preference.
	SetLanguage(ctx context.Context, code string) error
}
