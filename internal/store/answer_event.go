package store

import (
	"context"
	"fmt"

	"github.com/brighted/nable/ent"
	"github.com/brighted/nable/ent/answerevent"
	"github.com/brighted/nable/ent/itemflagevent"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetQuestionID(data.QuestionID).
		SetObjectiveID(data.ObjectiveID).
		SetSkillIds(data.SkillIDs).
		SetSelectedIndex(data.SelectedIndex).
		SetCorrectIndex(data.CorrectIndex).
		SetCorrect(data.Correct).
		SetTimeMs(data.TimeMs).
		SetDifficulty(data.Difficulty).
		SetErrorType(data.ErrorType).
		SetErrorRule(data.ErrorRule).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendItemFlag(ctx context.Context, data ItemFlagEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ItemFlagEvent.Create().
		SetSequence(seqNum).
		SetQuestionID(data.QuestionID).
		SetReason(data.Reason).
		SetFlagCount(data.FlagCount).
		SetArchived(data.Archived)

	if data.SessionID != "" {
		builder = builder.SetSessionID(data.SessionID)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save item flag event: %w", err)
	}
	return nil
}

// ItemStats folds the answer and flag logs into per-item aggregates. The
// catalogue hydrates Attempts, CorrectCount, FlagCount, and Archived from
// these on startup.
func (r *eventRepo) ItemStats(ctx context.Context) (map[string]ItemStats, error) {
	answers, err := r.client.AnswerEvent.Query().
		Select(answerevent.FieldQuestionID, answerevent.FieldCorrect).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	stats := make(map[string]ItemStats)
	for _, a := range answers {
		s := stats[a.QuestionID]
		s.Attempts++
		if a.Correct {
			s.Correct++
		}
		stats[a.QuestionID] = s
	}

	flags, err := r.client.ItemFlagEvent.Query().
		Order(ent.Asc(itemflagevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query item flag events: %w", err)
	}

	// Events are ordered, so the last row per item carries the final count
	// and archive status.
	for _, f := range flags {
		s := stats[f.QuestionID]
		s.FlagCount = f.FlagCount
		s.Archived = s.Archived || f.Archived
		stats[f.QuestionID] = s
	}

	return stats, nil
}

// UserSkillResults folds the learner's answer log into per-skill attempt
// totals. Answers spanning several skills count once per skill.
func (r *eventRepo) UserSkillResults(ctx context.Context, userID string) (map[string]SkillResult, error) {
	answers, err := r.client.AnswerEvent.Query().
		Where(answerevent.UserID(userID)).
		Select(answerevent.FieldSkillIds, answerevent.FieldCorrect).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}

	results := make(map[string]SkillResult)
	for _, a := range answers {
		for _, id := range a.SkillIds {
			res := results[id]
			res.Attempted++
			if a.Correct {
				res.Correct++
			}
			results[id] = res
		}
	}
	return results, nil
}
