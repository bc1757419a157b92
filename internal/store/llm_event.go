package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/brighted/nable/ent"
	"github.com/brighted/nable/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error) {
	q := r.client.LLMRequestEvent.Query()

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	records := make([]LLMRequestEventRecord, 0, len(events))
	for _, e := range events {
		records = append(records, entLLMEventToRecord(e))
	}
	return records, nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsageBy(ctx, func(e *ent.LLMRequestEvent) string { return e.Purpose })
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMUsage, error) {
	return r.llmUsageBy(ctx, func(e *ent.LLMRequestEvent) string { return e.Model })
}

func (r *eventRepo) llmUsageBy(ctx context.Context, key func(*ent.LLMRequestEvent) string) ([]LLMUsage, error) {
	events, err := r.client.LLMRequestEvent.Query().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	byKey := make(map[string]*LLMUsage)
	totalLatency := make(map[string]int64)
	for _, e := range events {
		k := key(e)
		u, ok := byKey[k]
		if !ok {
			u = &LLMUsage{Key: k}
			byKey[k] = u
		}
		u.Calls++
		if !e.Success {
			u.Failures++
		}
		u.InputTokens += e.InputTokens
		u.OutputTokens += e.OutputTokens
		totalLatency[k] += e.LatencyMs
	}

	usage := make([]LLMUsage, 0, len(byKey))
	for k, u := range byKey {
		u.AvgLatencyMs = totalLatency[k] / int64(u.Calls)
		usage = append(usage, *u)
	}
	sort.Slice(usage, func(i, j int) bool { return usage[i].Key < usage[j].Key })
	return usage, nil
}

func entLLMEventToRecord(e *ent.LLMRequestEvent) LLMRequestEventRecord {
	return LLMRequestEventRecord{
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		LLMRequestEventData: LLMRequestEventData{
			Provider:     e.Provider,
			Model:        e.Model,
			Purpose:      e.Purpose,
			InputTokens:  e.InputTokens,
			OutputTokens: e.OutputTokens,
			LatencyMs:    e.LatencyMs,
			Success:      e.Success,
			ErrorMessage: e.ErrorMessage,
		},
	}
}
