package store

import (
	"context"
	"fmt"

	"github.com/abhisek/mathgarden/ent"
	"github.com/abhisek/mathgarden/ent/rewardevent"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetSource(data.Source).
		SetAmount(data.Amount).
		SetBalance(data.Balance)

	if data.Detail != "" {
		builder = builder.SetDetail(data.Detail)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryRewardEvents(ctx context.Context, opts QueryOpts) ([]RewardEventRecord, error) {
	query := r.client.RewardEvent.Query().
		Order(ent.Desc(rewardevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(rewardevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(rewardevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(rewardevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(rewardevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reward events: %w", err)
	}

	records := make([]RewardEventRecord, len(events))
	for i, e := range events {
		records[i] = RewardEventRecord{
			Source:    e.Source,
			Amount:    e.Amount,
			Balance:   e.Balance,
			Detail:    e.Detail,
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}
