// Package lumen provides the public API for the Lumen UI core: reactive
// signals with coalesced notifications, in-place tree patching with
// component-owned subtree protection, and pluggable attribute
// reconciliation.
//
// This is the recommended import for most applications:
//
//	import "github.com/lumen-ui/lumen"
//
// Usage:
//
//	app := lumen.New(lumen.Config{})
//	count := lumen.NewSignal(0, lumen.OnScheduler(app.Scheduler()))
//	count.Watch(func(v int) { rerender(v) })
//	count.Set(1)
//	app.Flush()
package lumen

import (
	"log/slog"

	"github.com/lumen-ui/lumen/pkg/attrs"
	"github.com/lumen-ui/lumen/pkg/dom"
	"github.com/lumen-ui/lumen/pkg/patch"
	"github.com/lumen-ui/lumen/pkg/plugin"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

// App is the application context: one scheduler, one patcher, one plugin
// registry. Every dependency is an explicit value owned by the App;
// nothing is process-global, so independent Apps never interfere.
type App struct {
	config    Config
	logger    *slog.Logger
	scheduler *reactive.Scheduler
	patcher   *patch.Patcher
	plugins   *plugin.Registry
}

// New creates an App. Unless disabled, the attribute reconciler plugin
// is installed on the patcher and recorded in the plugin registry.
func New(config Config) *App {
	app := &App{
		config:  config,
		logger:  config.logger(),
		plugins: plugin.NewRegistry(),
	}

	var schedOpts []reactive.SchedulerOption
	if config.OnFlush != nil {
		schedOpts = append(schedOpts, reactive.WithFlushHook(config.OnFlush))
	}
	app.scheduler = reactive.NewScheduler(schedOpts...)

	var patchOpts []patch.Option
	if config.PatchObserver != nil {
		patchOpts = append(patchOpts, patch.WithObserver(config.PatchObserver))
	}
	app.patcher = patch.New(patchOpts...)

	if !config.DisableAttributes {
		attrOpts := []attrs.Option{attrs.WithConfig(config.attributeOptions())}
		if config.MutationObserver != nil {
			attrOpts = append(attrOpts, attrs.WithMutationObserver(config.MutationObserver))
		}
		attrs.Install(app, attrOpts...)
		app.logger.Debug("plugin installed",
			"name", attrs.PluginName,
			"version", attrs.PluginVersion)
	}

	return app
}

// Scheduler returns the App's task queue. Bind signals to it with
// reactive.OnScheduler so one Flush drains the whole application.
func (a *App) Scheduler() *reactive.Scheduler {
	return a.scheduler
}

// Patcher returns the App's tree patcher.
func (a *App) Patcher() *patch.Patcher {
	return a.patcher
}

// Plugins returns the App's plugin registry.
func (a *App) Plugins() *plugin.Registry {
	return a.plugins
}

// Patch mutates old in place to match new using the App's patcher and
// its installed attribute strategies.
func (a *App) Patch(old, new *dom.Node) {
	a.patcher.Apply(old, new)
}

// Flush drains the App's scheduler, delivering every pending signal
// notification. Errors from corrupted signals are logged and returned.
func (a *App) Flush() error {
	err := a.scheduler.Flush()
	if err != nil {
		a.logger.Error("flush failed", "error", err)
	}
	return err
}

// Batch groups signal updates so watchers see a single notification per
// changed signal when the outermost batch completes.
func (a *App) Batch(fn func()) {
	a.scheduler.Batch(fn)
}

// Re-exported reactive primitives, so most applications only import the
// root package.

// Signal is a reactive value container. See package reactive.
type Signal[T any] = reactive.Signal[T]

// SignalOption configures a signal at construction time.
type SignalOption = reactive.SignalOption

// FlushStats describes one completed scheduler flush.
type FlushStats = reactive.FlushStats

// NewSignal creates a signal holding the given initial value.
func NewSignal[T any](initial T, opts ...SignalOption) *Signal[T] {
	return reactive.NewSignal(initial, opts...)
}

// OnScheduler binds a signal to a scheduler, typically app.Scheduler().
var OnScheduler = reactive.OnScheduler

// ErrCorruptedSignal reports a signal whose watcher state is unusable.
var ErrCorruptedSignal = reactive.ErrCorruptedSignal
