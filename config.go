package lumen

import (
	"log/slog"

	"github.com/lumen-ui/lumen/pkg/attrs"
	"github.com/lumen-ui/lumen/pkg/patch"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

// Config is the main application configuration.
// The zero value is usable: every field has a working default.
type Config struct {
	// Logger is the structured logger for the application.
	// If nil, slog.Default() is used.
	Logger *slog.Logger

	// DisableAttributes skips installing the attribute reconciler plugin.
	// Without it the patcher falls back to plain copy-all attribute sync:
	// no category semantics, no property mirroring.
	DisableAttributes bool

	// Attributes configures the attribute reconciler plugin.
	// If nil, every category is enabled.
	Attributes *attrs.Options

	// OnFlush is invoked after every non-empty scheduler flush with that
	// flush's stats. Use it to feed metrics or debugging output.
	OnFlush func(reactive.FlushStats)

	// PatchObserver receives every node-level patch operation.
	PatchObserver patch.Observer

	// MutationObserver receives every attribute mutation the reconciler
	// issues. Ignored when DisableAttributes is set.
	MutationObserver attrs.MutationObserver
}

// attributeOptions resolves the effective reconciler options.
func (c Config) attributeOptions() attrs.Options {
	if c.Attributes != nil {
		return *c.Attributes
	}
	return attrs.DefaultOptions()
}

// logger resolves the effective logger.
func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
