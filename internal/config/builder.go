package config

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithLogLevel sets the log level.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.Log.Level = level
	return b
}

// WithLogFormat sets the log format.
func (b *ConfigBuilder) WithLogFormat(format string) *ConfigBuilder {
	b.cfg.Log.Format = format
	return b
}

// WithLongestCapture enables the longest-capture rule.
func (b *ConfigBuilder) WithLongestCapture(enabled bool) *ConfigBuilder {
	b.cfg.Engine.LongestCapture = enabled
	return b
}

// WithStartingTurn sets the default side to move.
func (b *ConfigBuilder) WithStartingTurn(turn string) *ConfigBuilder {
	b.cfg.Engine.StartingTurn = turn
	return b
}

// WithOutputFormat sets the output format.
func (b *ConfigBuilder) WithOutputFormat(format OutputFormat) *ConfigBuilder {
	b.cfg.Output.Format = format
	return b
}

// WithWorkers sets the number of parallel scenario workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Runner.Workers = n
	return b
}

// WithFailFast stops scenario runs after the first failure.
func (b *ConfigBuilder) WithFailFast(enabled bool) *ConfigBuilder {
	b.cfg.Runner.FailFast = enabled
	return b
}
