package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendLesson(ctx context.Context, data LessonEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LessonEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetSkillID(data.SkillID).
		SetLessonTitle(data.LessonTitle).
		SetSource(data.Source).
		SetErrorType(data.ErrorType).
		SetPracticeAttempted(data.PracticeAttempted).
		SetPracticeCorrect(data.PracticeCorrect).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save lesson event: %w", err)
	}
	return nil
}
