package sqlforge

import "log/slog"

// Config holds options for GenerateWith.
type Config struct {
	// Logger receives assembly records. If nil, nothing is logged.
	Logger *slog.Logger

	// StrictData replaces the INSERT block of a table whose entered rows
	// fail value validation with a comment listing the bad cells.
	StrictData bool
}

// Option is a functional option for GenerateWith.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}

// WithStrictData enables strict checking of entered rows.
func WithStrictData(strict bool) Option {
	return func(c *Config) {
		c.StrictData = strict
	}
}
