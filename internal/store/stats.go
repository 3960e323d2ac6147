package store

import (
	"context"
	"fmt"

	"github.com/amink/durus/ent"
)

// statsRepo implements StatsRepo using the ent client.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Load(ctx context.Context) (*ActionStatsRecord, error) {
	row, err := r.client.ActionStats.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &ActionStatsRecord{}, nil
		}
		return nil, &StorageError{Op: "read stats", Err: err}
	}
	return &ActionStatsRecord{
		Summary: row.SummaryCount,
		Quiz:    row.QuizCount,
		Plan:    row.PlanCount,
	}, nil
}

func (r *statsRepo) Increment(ctx context.Context, kind ActionKind) (*ActionStatsRecord, error) {
	rec, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	switch kind {
	case ActionSummary:
		rec.Summary++
	case ActionQuiz:
		rec.Quiz++
	case ActionPlan:
		rec.Plan++
	default:
		return nil, &StorageError{Op: "increment stats", Err: fmt.Errorf("unknown action kind %q", kind)}
	}

	row, err := r.client.ActionStats.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return nil, &StorageError{Op: "read stats", Err: err}
		}
		_, err = r.client.ActionStats.Create().
			SetSummaryCount(rec.Summary).
			SetQuizCount(rec.Quiz).
			SetPlanCount(rec.Plan).
			Save(ctx)
		if err != nil {
			return nil, &StorageError{Op: "write stats", Err: err}
		}
		return rec, nil
	}

	_, err = row.Update().
		SetSummaryCount(rec.Summary).
		SetQuizCount(rec.Quiz).
		SetPlanCount(rec.Plan).
		Save(ctx)
	if err != nil {
		return nil, &StorageError{Op: "write stats", Err: err}
	}
	return rec, nil
}
