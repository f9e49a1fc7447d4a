package model

import (
	"fmt"
	"log"

	"github.com/sarchlab/rtlsim/bits"
)

// Settings are the resolved construction options of an adapter.
type Settings struct {
	Config *Config
	Logger *log.Logger
}

// Option configures an adapter at construction.
type Option func(*Settings)

// WithConfig replaces the adapter configuration. The config is cloned; a
// nil config selects the defaults.
func WithConfig(config *Config) Option {
	return func(s *Settings) {
		if config == nil {
			s.Config = DefaultConfig()
			return
		}
		s.Config = config.Clone()
	}
}

// WithWidthPolicy overrides the width policy of the configuration.
func WithWidthPolicy(p bits.Policy) Option {
	return func(s *Settings) {
		s.Config.WidthPolicy = p
	}
}

// WithLogger enables diagnostic logging.
func WithLogger(logger *log.Logger) Option {
	return func(s *Settings) {
		s.Logger = logger
	}
}

// ApplyOptions resolves opts on top of the defaults and validates the
// resulting configuration.
func ApplyOptions(opts ...Option) (Settings, error) {
	s := Settings{Config: DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}

	if err := s.Config.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid model options: %w", err)
	}

	return s, nil
}

// Logf logs through the configured logger, if any.
func (s Settings) Logf(format string, args ...any) {
	if s.Logger != nil {
		s.Logger.Printf(format, args...)
	}
}
