package lessons

// SessionCompressionThreshold is the accumulated error-note length, in
// characters, above which a session summary is compressed by the model.
const SessionCompressionThreshold = 800

// Config holds generation settings for micro-lessons.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the generation settings used in production.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}

// CompressorConfig holds settings for session and profile compression.
type CompressorConfig struct {
	SessionMaxTokens int
	ProfileMaxTokens int
	Temperature      float64
}

// DefaultCompressorConfig returns the compression settings used in
// production. A low temperature keeps summaries factual.
func DefaultCompressorConfig() CompressorConfig {
	return CompressorConfig{
		SessionMaxTokens: 256,
		ProfileMaxTokens: 512,
		Temperature:      0.3,
	}
}
