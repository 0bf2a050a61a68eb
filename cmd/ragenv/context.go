package main

import (
	"context"
	"errors"

	"github.com/sagarc03/ragenv/environment"
)

// settingsKey is the context key for storing the loaded settings.
type settingsKey struct{}

// withSettings returns a new context with the settings stored.
func withSettings(ctx context.Context, s *environment.Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// settingsFromContext retrieves the settings from context.
// Returns an error if settings are not found.
func settingsFromContext(ctx context.Context) (*environment.Settings, error) {
	s, ok := ctx.Value(settingsKey{}).(*environment.Settings)
	if !ok || s == nil {
		return nil, errors.New("settings not found in context")
	}
	return s, nil
}
