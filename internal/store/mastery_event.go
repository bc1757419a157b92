package store

import (
	"context"
	"fmt"

	"github.com/brighted/nable/ent"
	"github.com/brighted/nable/ent/masteryevent"
)

func (r *eventRepo) AppendMastery(ctx context.Context, data MasteryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.MasteryEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetMasteryBefore(data.MasteryBefore).
		SetMasteryAfter(data.MasteryAfter).
		SetConfidence(data.Confidence).
		SetHalfLifeDays(data.HalfLifeDays).
		SetStreak(data.Streak).
		SetTrigger(data.Trigger)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}
	return nil
}

// SkillPriors averages each learner's latest mastery per skill across the
// whole event log. New learners' placement diagnostics start from these
// instead of the ladder midpoint.
func (r *eventRepo) SkillPriors(ctx context.Context) (map[string]float64, error) {
	events, err := r.client.MasteryEvent.Query().
		Order(ent.Asc(masteryevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}

	type userSkill struct {
		user  string
		skill string
	}

	// Ascending order means the last write per learner+skill wins.
	latest := make(map[userSkill]float64)
	for _, e := range events {
		latest[userSkill{e.UserID, e.SkillID}] = e.MasteryAfter
	}

	sums := make(map[string]float64)
	counts := make(map[string]int)
	for k, m := range latest {
		sums[k.skill] += m
		counts[k.skill]++
	}

	priors := make(map[string]float64, len(sums))
	for skill, sum := range sums {
		priors[skill] = sum / float64(counts[skill])
	}
	return priors, nil
}
