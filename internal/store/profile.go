package store

import (
	"context"
	"encoding/json"

	"github.com/amink/durus/ent"
)

// profileRepo implements ProfileRepo using the ent client.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context) (*ProfileRecord, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return DefaultProfile(), nil
		}
		return nil, &StorageError{Op: "read profile", Err: err}
	}

	rec := &ProfileRecord{
		XP:         row.Xp,
		Level:      row.Level,
		Streak:     row.Streak,
		LastActive: row.LastActive,
	}
	// A corrupt badge list degrades to no badges rather than failing the read.
	rec.Badges, _ = badgesFromMaps(row.Badges)
	return rec, nil
}

func (r *profileRepo) Save(ctx context.Context, p *ProfileRecord) error {
	badgeMaps, err := badgesToMaps(p.Badges)
	if err != nil {
		return &StorageError{Op: "encode profile", Err: err}
	}

	row, err := r.client.Profile.Query().First(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return &StorageError{Op: "read profile", Err: err}
		}
		_, err = r.client.Profile.Create().
			SetXp(p.XP).
			SetLevel(p.Level).
			SetBadges(badgeMaps).
			SetStreak(p.Streak).
			SetLastActive(p.LastActive).
			Save(ctx)
		if err != nil {
			return &StorageError{Op: "write profile", Err: err}
		}
		return nil
	}

	_, err = row.Update().
		SetXp(p.XP).
		SetLevel(p.Level).
		SetBadges(badgeMaps).
		SetStreak(p.Streak).
		SetLastActive(p.LastActive).
		Save(ctx)
	if err != nil {
		return &StorageError{Op: "write profile", Err: err}
	}
	return nil
}

// badgesToMaps converts badge snapshots to the []map form ent stores as JSON.
func badgesToMaps(badges []BadgeData) ([]map[string]any, error) {
	if len(badges) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(badges)
	if err != nil {
		return nil, err
	}
	var maps []map[string]any
	if err := json.Unmarshal(b, &maps); err != nil {
		return nil, err
	}
	return maps, nil
}

func badgesFromMaps(maps []map[string]any) ([]BadgeData, error) {
	if len(maps) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(maps)
	if err != nil {
		return nil, err
	}
	var badges []BadgeData
	if err := json.Unmarshal(b, &badges); err != nil {
		return nil, err
	}
	return badges, nil
}
