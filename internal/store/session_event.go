package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetAction(data.Action).
		SetPhase(data.Phase).
		SetQuestionsServed(data.QuestionsServed).
		SetCorrectAnswers(data.CorrectAnswers).
		SetHeartsRemaining(data.HeartsRemaining).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendPlacement(ctx context.Context, data PlacementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlacementEvent.Create().
		SetSequence(seqNum).
		SetUserID(data.UserID).
		SetSessionID(data.SessionID).
		SetLevel(data.Level).
		SetMastery(data.Mastery).
		SetConfidence(data.Confidence).
		SetQuestionsAsked(data.QuestionsAsked).
		SetProbedSkills(data.ProbedSkills).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save placement event: %w", err)
	}
	return nil
}
