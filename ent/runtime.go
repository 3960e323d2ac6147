// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/amink/durus/ent/actionstats"
	"github.com/amink/durus/ent/historyentry"
	"github.com/amink/durus/ent/llmrequestevent"
	"github.com/amink/durus/ent/preference"
	"github.com/amink/durus/ent/profile"
	"github.com/amink/durus/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	actionstatsFields := schema.ActionStats{}.Fields()
	_ = actionstatsFields
	// actionstatsDescSummaryCount is the schema descriptor for summary_count field.
	actionstatsDescSummaryCount := actionstatsFields[0].Descriptor()
	// actionstats.DefaultSummaryCount holds the default value on creation for the summary_count field.
	actionstats.DefaultSummaryCount = actionstatsDescSummaryCount.Default.(int)
	// actionstats.SummaryCountValidator is a validator for the "summary_count" field. It is called by the builders before save.
	actionstats.SummaryCountValidator = actionstatsDescSummaryCount.Validators[0].(func(int) error)
	// actionstatsDescQuizCount is the schema descriptor for quiz_count field.
	actionstatsDescQuizCount := actionstatsFields[1].Descriptor()
	// actionstats.DefaultQuizCount holds the default value on creation for the quiz_count field.
	actionstats.DefaultQuizCount = actionstatsDescQuizCount.Default.(int)
	// actionstats.QuizCountValidator is a validator for the "quiz_count" field. It is called by the builders before save.
	actionstats.QuizCountValidator = actionstatsDescQuizCount.Validators[0].(func(int) error)
	// actionstatsDescPlanCount is the schema descriptor for plan_count field.
	actionstatsDescPlanCount := actionstatsFields[2].Descriptor()
	// actionstats.DefaultPlanCount holds the default value on creation for the plan_count field.
	actionstats.DefaultPlanCount = actionstatsDescPlanCount.Default.(int)
	// actionstats.PlanCountValidator is a validator for the "plan_count" field. It is called by the builders before save.
	actionstats.PlanCountValidator = actionstatsDescPlanCount.Validators[0].(func(int) error)
	historyentryFields := schema.HistoryEntry{}.Fields()
	_ = historyentryFields
	// historyentryDescEntryID is the schema descriptor for entry_id field.
	historyentryDescEntryID := historyentryFields[0].Descriptor()
	// historyentry.EntryIDValidator is a validator for the "entry_id" field. It is called by the builders before save.
	historyentry.EntryIDValidator = historyentryDescEntryID.Validators[0].(func(string) error)
	// historyentryDescCreatedAt is the schema descriptor for created_at field.
	historyentryDescCreatedAt := historyentryFields[4].Descriptor()
	// historyentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	historyentry.DefaultCreatedAt = historyentryDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	preferenceFields := schema.Preference{}.Fields()
	_ = preferenceFields
	// preferenceDescLanguage is the schema descriptor for language field.
	preferenceDescLanguage := preferenceFields[0].Descriptor()
	// preference.DefaultLanguage holds the default value on creation for the language field.
	preference.DefaultLanguage = preferenceDescLanguage.Default.(string)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescXp is the schema descriptor for xp field.
	profileDescXp := profileFields[0].Descriptor()
	// profile.DefaultXp holds the default value on creation for the xp field.
	profile.DefaultXp = profileDescXp.Default.(int)
	// profile.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	profile.XpValidator = profileDescXp.Validators[0].(func(int) error)
	// profileDescLevel is the schema descriptor for level field.
	profileDescLevel := profileFields[1].Descriptor()
	// profile.DefaultLevel holds the default value on creation for the level field.
	profile.DefaultLevel = profileDescLevel.Default.(int)
	// profile.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	profile.LevelValidator = profileDescLevel.Validators[0].(func(int) error)
	// profileDescStreak is the schema descriptor for streak field.
	profileDescStreak := profileFields[3].Descriptor()
	// profile.DefaultStreak holds the default value on creation for the streak field.
	profile.DefaultStreak = profileDescStreak.Default.(int)
	// profileDescLastActive is the schema descriptor for last_active field.
	profileDescLastActive := profileFields[4].Descriptor()
	// profile.DefaultLastActive holds the default value on creation for the last_active field.
	profile.DefaultLastActive = profileDescLastActive.Default.(func() time.Time)
}
