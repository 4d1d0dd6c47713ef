package event

import "github.com/rs/zerolog"

// Option configures an Emitter.
type Option func(*emitterConfig)

// emitterConfig contains configuration for the emitter.
type emitterConfig struct {
	// logger receives registry and dispatch diagnostics.
	logger zerolog.Logger

	// metricsEnabled controls whether callback timing is collected.
	metricsEnabled bool
}

// defaultEmitterConfig returns sensible default configuration.
func defaultEmitterConfig() emitterConfig {
	return emitterConfig{
		logger:         zerolog.Nop(),
		metricsEnabled: true,
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(c *emitterConfig) {
		c.logger = l.With().Str("component", "emitter").Logger()
	}
}

// WithMetrics enables or disables callback timing.
// Counters are always maintained.
func WithMetrics(enabled bool) Option {
	return func(c *emitterConfig) {
		c.metricsEnabled = enabled
	}
}
