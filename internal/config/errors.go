package config

import (
	"errors"
)

var (
	// ErrInvalidConfig marks a value Validate refused.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks a source (file, dotenv, environment) that could not be read.
	ErrLoadConfig = errors.New("load config failed")
)

// KeyError names the koanf key that failed validation.
type KeyError struct {
	Key    string
	Reason string
}

func (e *KeyError) Error() string {
	return ErrInvalidConfig.Error() + ": " + e.Key + " " + e.Reason
}

// Is makes errors.Is(err, ErrInvalidConfig) hold for every KeyError.
func (e *KeyError) Is(target error) bool { return target == ErrInvalidConfig }

func invalid(key, reason string) error {
	return &KeyError{Key: key, Reason: reason}
}
