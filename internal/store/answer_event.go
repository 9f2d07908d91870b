package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathgarden/ent/answerevent"
)

func (r *eventRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetOperation(data.Operation).
		SetDifficulty(data.Difficulty).
		SetQuestionText(data.QuestionText).
		SetCorrectAnswer(data.CorrectAnswer).
		SetPlayerAnswer(data.PlayerAnswer).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) AnswerTotals(ctx context.Context) (int, int, error) {
	total, err := r.client.AnswerEvent.Query().Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count answer events: %w", err)
	}
	correct, err := r.client.AnswerEvent.Query().
		Where(answerevent.Correct(true)).
		Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count correct answers: %w", err)
	}
	return total, correct, nil
}
