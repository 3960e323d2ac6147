// Package progress implements the gamification layer: experience points,
// levels, achievement badges, and the action counters that drive unlocks.
package progress

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/amink/durus/internal/store"
)

// XP awarded per completed action.
const (
	XPSummary = 50
	XPQuiz    = 100
	XPPlan    = 75
)

// AwardFor returns the XP granted for completing an action of the given kind.
func AwardFor(kind store.ActionKind) int {
	switch kind {
	case store.ActionSummary:
		return XPSummary
	case store.ActionQuiz:
		return XPQuiz
	case store.ActionPlan:
		return XPPlan
	}
	return 0
}

// LevelForXP computes the level implied by a total XP amount:
// floor(1 + sqrt(xp/100)). Level 2 needs 100 XP, level 3 needs 400.
func LevelForXP(xp int) int {
	if xp < 0 {
		return 1
	}
	return int(math.Floor(1 + math.Sqrt(float64(xp)/100)))
}

// XPForLevel returns the total XP at which the given level is reached.
func XPForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}

// ProgressFraction returns how far the learner is through the current
// level, in [0, 1]. The span runs from (level-1)^2*100 to level^2*100.
func ProgressFraction(xp, level int) float64 {
	prev := float64(level-1) * float64(level-1) * 100
	next := float64(level) * float64(level) * 100
	if next <= prev {
		return 0
	}
	f := (float64(xp) - prev) / (next - prev)
	return math.Min(1, math.Max(0, f))
}

// Update describes a profile change delivered to subscribers.
type Update struct {
	Profile   *store.ProfileRecord
	LeveledUp bool
	Unlocked  []Badge // badges unlocked by this change, catalog order
}

// Service owns all reads and writes of the learner profile and action
// counters. All mutations go through it so that concurrent callers within
// the process serialize and subscribers see every change.
type Service struct {
	profiles store.ProfileRepo
	stats    store.StatsRepo

	mu sync.Mutex // serializes profile mutations

	subMu sync.Mutex
	subs  map[int]func(Update)
	next  int

	now func() time.Time
}

// NewService creates a progress service over the given repositories.
func NewService(profiles store.ProfileRepo, stats store.StatsRepo) *Service {
	return &Service{
		profiles: profiles,
		stats:    stats,
		subs:     make(map[int]func(Update)),
		now:      time.Now,
	}
}

// Subscribe registers fn to be called after every profile mutation.
// The returned function removes the subscription.
func (s *Service) Subscribe(fn func(Update)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Service) notify(u Update) {
	s.subMu.Lock()
	fns := make([]func(Update), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn(u)
	}
}

// Profile returns the current profile, defaults included.
func (s *Service) Profile(ctx context.Context) (*store.ProfileRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profiles.Load(ctx)
}

// Stats returns the current action counters.
func (s *Service) Stats(ctx context.Context) (*store.ActionStatsRecord, error) {
	return s.stats.Load(ctx)
}

// AddXP grants amount XP, raises the level when the total crosses a
// threshold (never lowers it), stamps the activity time, and persists.
func (s *Service) AddXP(ctx context.Context, amount int) (*store.ProfileRecord, error) {
	s.mu.Lock()
	p, u, err := s.addXPLocked(ctx, amount)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	s.notify(u)
	return p, nil
}

func (s *Service) addXPLocked(ctx context.Context, amount int) (*store.ProfileRecord, Update, error) {
	p, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, Update{}, err
	}

	p.XP += amount
	leveled := false
	if lvl := LevelForXP(p.XP); lvl > p.Level {
		p.Level = lvl
		leveled = true
	}
	p.LastActive = s.now()

	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, Update{}, err
	}
	return p, Update{Profile: p, LeveledUp: leveled}, nil
}

// UnlockBadge adds the catalog badge with the given ID to the profile.
// Already-unlocked badges and unknown IDs are no-ops.
func (s *Service) UnlockBadge(ctx context.Context, id string) (*store.ProfileRecord, error) {
	s.mu.Lock()
	p, u, unlocked, err := s.unlockBadgeLocked(ctx, id)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if unlocked {
		s.notify(u)
	}
	return p, nil
}

func (s *Service) unlockBadgeLocked(ctx context.Context, id string) (*store.ProfileRecord, Update, bool, error) {
	p, err := s.profiles.Load(ctx)
	if err != nil {
		return nil, Update{}, false, err
	}

	for _, b := range p.Badges {
		if b.ID == id {
			return p, Update{}, false, nil
		}
	}

	def := CatalogBadge(id)
	if def == nil {
		return p, Update{}, false, nil
	}

	p.Badges = append(p.Badges, def.snapshot(s.now()))
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, Update{}, false, err
	}
	return p, Update{Profile: p, Unlocked: []Badge{*def}}, true, nil
}

// RecordAction registers a completed action: it increments the action
// counter, awards the kind's XP, and evaluates badge unlock rules against
// the updated counters. It returns the final profile and any badges
// unlocked by this action.
func (s *Service) RecordAction(ctx context.Context, kind store.ActionKind) (*store.ProfileRecord, []Badge, error) {
	s.mu.Lock()
	p, unlocked, update, err := s.recordActionLocked(ctx, kind)
	s.mu.Unlock()
	if err != nil {
		return nil, nil, err
	}
	s.notify(update)
	return p, unlocked, nil
}

func (s *Service) recordActionLocked(ctx context.Context, kind store.ActionKind) (*store.ProfileRecord, []Badge, Update, error) {
	counters, err := s.stats.Increment(ctx, kind)
	if err != nil {
		return nil, nil, Update{}, err
	}

	p, update, err := s.addXPLocked(ctx, AwardFor(kind))
	if err != nil {
		return nil, nil, Update{}, err
	}

	var unlocked []Badge
	for _, id := range badgesEarned(kind, counters) {
		var u Update
		var did bool
		p, u, did, err = s.unlockBadgeLocked(ctx, id)
		if err != nil {
			return nil, nil, Update{}, err
		}
		if did {
			unlocked = append(unlocked, u.Unlocked...)
		}
	}

	update.Profile = p
	update.Unlocked = unlocked
	return p, unlocked, update, nil
}

// badgesEarned returns the badge IDs whose unlock rule is satisfied after
// an action of the given kind with the given counters.
func badgesEarned(kind store.ActionKind, counters *store.ActionStatsRecord) []string {
	var ids []string
	switch kind {
	case store.ActionSummary:
		if counters.Summary >= 1 {
			ids = append(ids, BadgeFirstSummary)
		}
	case store.ActionQuiz:
		if counters.Quiz >= 5 {
			ids = append(ids, BadgeQuizMaster)
		}
	case store.ActionPlan:
		ids = append(ids, BadgePlannerPro)
	}
	return ids
}
