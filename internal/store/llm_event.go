package store

import (
	"context"
	"sort"

	"github.com/amink/durus/ent"
	"github.com/amink/durus/ent/llmrequestevent"
)

// eventRepo implements EventRepo using the ent client.
type eventRepo struct {
	client *ent.Client
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.client.LLMRequestEvent.Create().
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "save LLM request event", Err: err}
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	query := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldID))

	if opts.Purpose != "" {
		query = query.Where(llmrequestevent.Purpose(opts.Purpose))
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query LLM events", Err: err}
	}

	records := make([]LLMRequestEventRecord, len(rows))
	for i, row := range rows {
		records[i] = recordFromRow(row)
	}
	return records, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, &StorageError{Op: "get LLM event", Err: err}
	}
	rec := recordFromRow(row)
	return &rec, nil
}

func (r *eventRepo) UsageByPurpose(ctx context.Context) ([]LLMUsageStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query LLM usage", Err: err}
	}

	byPurpose := make(map[string]*LLMUsageStats)
	for _, row := range rows {
		s, ok := byPurpose[row.Purpose]
		if !ok {
			s = &LLMUsageStats{Purpose: row.Purpose}
			byPurpose[row.Purpose] = s
		}
		s.Requests++
		s.InputTokens += row.InputTokens
		s.OutputTokens += row.OutputTokens
	}

	stats := make([]LLMUsageStats, 0, len(byPurpose))
	for _, s := range byPurpose {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Purpose < stats[j].Purpose })
	return stats, nil
}

func (r *eventRepo) UsageByModel(ctx context.Context) ([]ModelUsageStats, error) {
	rows, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "query LLM usage", Err: err}
	}

	byModel := make(map[string]*ModelUsageStats)
	for _, row := range rows {
		s, ok := byModel[row.Model]
		if !ok {
			s = &ModelUsageStats{Model: row.Model}
			byModel[row.Model] = s
		}
		s.Requests++
		s.InputTokens += row.InputTokens
		s.OutputTokens += row.OutputTokens
	}

	stats := make([]ModelUsageStats, 0, len(byModel))
	for _, s := range byModel {
		stats = append(stats, *s)
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Model < stats[j].Model })
	return stats, nil
}

func recordFromRow(row *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		ID:        row.ID,
		Timestamp: row.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     row.Provider,
			Model:        row.Model,
			Purpose:      row.Purpose,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			LatencyMs:    row.LatencyMs,
			Success:      row.Success,
			ErrorMessage: row.ErrorMessage,
			RequestBody:  row.RequestBody,
			ResponseBody: row.ResponseBody,
		},
	}
}
