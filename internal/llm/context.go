package llm

import "context"

// Purpose labels recorded with every LLM request event. Consumers attach
// one via WithPurpose so usage and cost can be broken down per feature.
const (
	PurposeLesson   = "lesson"
	PurposeProfile  = "profile"
	PurposeCompress = "compress"
	PurposeUnknown  = "unknown"
)

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return PurposeUnknown
}
