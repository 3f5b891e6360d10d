package models

import (
	"errors"
	"time"
)

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Protocol       string
	FilePath       string
	Recipient      string
	TickInterval   time.Duration
	ProgressStep   int
	KeyLength      int
	ParticleCount  int
	FrameInterval  time.Duration
	NoticeDuration time.Duration
	CopyFeedback   time.Duration
	LogFile        string
	AltScreen      bool
	Verbose        bool
}

var DefaultConfig = Config{
	Protocol:       string(ProtocolBB84),
	TickInterval:   200 * time.Millisecond,
	ProgressStep:   2,
	KeyLength:      256,
	ParticleCount:  40,
	FrameInterval:  100 * time.Millisecond,
	NoticeDuration: 4 * time.Second,
	CopyFeedback:   2 * time.Second,
	AltScreen:      true,
}

// Validate checks the configuration and fills zero durations and sizes with
// their defaults.
func (c *Config) Validate() error {
	if c.Protocol == "" {
		c.Protocol = DefaultConfig.Protocol
	}
	if _, err := ParseProtocol(c.Protocol); err != nil {
		return &ConfigError{Field: "protocol", Message: err.Error()}
	}

	if c.ProgressStep < 0 || c.ProgressStep > MaxProgress {
		return &ConfigError{Field: "progress_step", Message: "step must be between 1 and 100"}
	}
	if c.ProgressStep == 0 {
		c.ProgressStep = DefaultConfig.ProgressStep
	}

	if c.TickInterval < 0 {
		return &ConfigError{Field: "tick_interval", Message: "interval cannot be negative"}
	}
	if c.TickInterval == 0 {
		c.TickInterval = DefaultConfig.TickInterval
	}

	if c.KeyLength < 0 {
		return &ConfigError{Field: "key_length", Message: "key length cannot be negative"}
	}
	if c.KeyLength == 0 {
		c.KeyLength = DefaultConfig.KeyLength
	}

	if c.ParticleCount <= 0 {
		c.ParticleCount = DefaultConfig.ParticleCount
	}
	if c.FrameInterval <= 0 {
		c.FrameInterval = DefaultConfig.FrameInterval
	}
	if c.NoticeDuration <= 0 {
		c.NoticeDuration = DefaultConfig.NoticeDuration
	}
	if c.CopyFeedback <= 0 {
		c.CopyFeedback = DefaultConfig.CopyFeedback
	}

	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
