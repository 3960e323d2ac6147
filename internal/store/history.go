package store

import (
	"context"
	"encoding/json"

	"github.com/amink/durus/ent"
	"github.com/amink/durus/ent/historyentry"
)

// historyRepo implements HistoryRepo using the ent client.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Save(ctx context.Context, rec HistoryRecord) error {
	payload, err := json.Marshal(rec.Payload)
	if err != nil {
		return &StorageError{Op: "marshal history payload", Err: err}
	}
	_, err = r.client.HistoryEntry.Create().
		SetEntryID(rec.ID).
		SetCategory(historyentry.Category(rec.Category)).
		SetTitle(rec.Title).
		SetPayload(string(payload)).
		SetCreatedAt(rec.CreatedAt).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "save history entry", Err: err}
	}
	return r.prune(ctx, rec.Category)
}

// prune deletes all but the HistoryKeep most recent entries in the category.
func (r *historyRepo) prune(ctx context.Context, cat Category) error {
	stale, err := r.client.HistoryEntry.Query().
		Where(historyentry.CategoryEQ(historyentry.Category(cat))).
		Order(ent.Desc(historyentry.FieldCreatedAt), ent.Desc(historyentry.FieldID)).
		Offset(HistoryKeep).
		IDs(ctx)
	if err != nil {
		return &StorageError{Op: "query history for prune", Err: err}
	}
	if len(stale) == 0 {
		return nil
	}
	_, err = r.client.HistoryEntry.Delete().
		Where(historyentry.IDIn(stale...)).
		Exec(ctx)
	if err != nil {
		return &StorageError{Op: "prune history", Err: err}
	}
	return nil
}

func (r *historyRepo) List(ctx context.Context, cat Category) ([]HistoryRecord, error) {
	rows, err := r.client.HistoryEntry.Query().
		Where(historyentry.CategoryEQ(historyentry.Category(cat))).
		Order(ent.Desc(historyentry.FieldCreatedAt), ent.Desc(historyentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list history", Err: err}
	}

	records := make([]HistoryRecord, 0, len(rows))
	for _, row := range rows {
		var payload map[string]any
		if err := json.Unmarshal([]byte(row.Payload), &payload); err != nil {
			// Entries with an unreadable payload are dropped from the
			// listing rather than failing the whole query.
			continue
		}
		records = append(records, HistoryRecord{
			ID:        row.EntryID,
			Category:  Category(row.Category),
			Title:     row.Title,
			Payload:   payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return records, nil
}

func (r *historyRepo) DeleteAt(ctx context.Context, cat Category, index int) error {
	if index < 0 {
		return nil
	}
	rows, err := r.client.HistoryEntry.Query().
		Where(historyentry.CategoryEQ(historyentry.Category(cat))).
		Order(ent.Desc(historyentry.FieldCreatedAt), ent.Desc(historyentry.FieldID)).
		All(ctx)
	if err != nil {
		return &StorageError{Op: "query history for delete", Err: err}
	}

	// Index positions must match what List returns, so rows List would
	// drop are not counted here either.
	pos := 0
	for _, row := range rows {
		var payload map[string]any
		if json.Unmarshal([]byte(row.Payload), &payload) != nil {
			continue
		}
		if pos == index {
			if err := r.client.HistoryEntry.DeleteOneID(row.ID).Exec(ctx); err != nil {
				return &StorageError{Op: "delete history entry", Err: err}
			}
			return nil
		}
		pos++
	}
	return nil
}
