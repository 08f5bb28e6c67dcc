package lumen

import (
	"log/slog"
	"testing"

	"github.com/lumen-ui/lumen/pkg/attrs"
	"github.com/lumen-ui/lumen/pkg/dom"
	"github.com/lumen-ui/lumen/pkg/patch"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

func TestNewInstallsAttributePlugin(t *testing.T) {
	app := New(Config{})

	names := app.Patcher().Syncers()
	if len(names) != 1 || names[0] != attrs.PluginName {
		t.Errorf("strategies = %v, want [%s]", names, attrs.PluginName)
	}
	if _, ok := app.Plugins().Get(attrs.PluginName); !ok {
		t.Error("attribute plugin should be registered")
	}
}

func TestNewDisableAttributes(t *testing.T) {
	app := New(Config{DisableAttributes: true})

	if names := app.Patcher().Syncers(); len(names) != 0 {
		t.Errorf("strategies = %v, want none", names)
	}
	if _, ok := app.Plugins().Get(attrs.PluginName); ok {
		t.Error("attribute plugin should not be registered")
	}
}

func TestAppsAreIndependent(t *testing.T) {
	a := New(Config{})
	b := New(Config{})

	attrs.Uninstall(a)

	if _, ok := b.Plugins().Get(attrs.PluginName); !ok {
		t.Error("uninstalling from one app must not affect another")
	}
	if len(b.Patcher().Syncers()) != 1 {
		t.Error("second app's patcher should keep its strategy")
	}
}

func TestSignalFlowThroughApp(t *testing.T) {
	app := New(Config{Logger: slog.Default()})

	count := NewSignal(0, OnScheduler(app.Scheduler()))
	var got []int
	count.Watch(func(v int) { got = append(got, v) })

	count.Set(1)
	count.Set(2)
	if err := app.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if len(got) != 1 || got[0] != 2 {
		t.Errorf("watcher calls = %v, want [2]", got)
	}
}

func TestBatchCoalescesAcrossSignals(t *testing.T) {
	app := New(Config{})

	a := NewSignal("", OnScheduler(app.Scheduler()))
	b := NewSignal(0, OnScheduler(app.Scheduler()))
	calls := 0
	a.Watch(func(string) { calls++ })
	b.Watch(func(int) { calls++ })

	app.Batch(func() {
		a.Set("x")
		a.Set("y")
		b.Set(1)
	})

	if calls != 2 {
		t.Errorf("watcher calls = %d, want 2 (one per changed signal)", calls)
	}
}

func TestPatchAppliesAttributeSemantics(t *testing.T) {
	app := New(Config{})

	old := dom.NewElement("button")
	new := dom.NewElement("button")
	new.SetAttr("disabled", "")
	new.SetAttr("aria-label", "Save")
	app.Patch(old, new)

	if v, ok := old.Prop("disabled"); !ok || v != true {
		t.Errorf("disabled property = %v, want true", v)
	}
	if v, ok := old.Prop("ariaLabel"); !ok || v != "Save" {
		t.Errorf("ariaLabel property = %v, want %q", v, "Save")
	}
}

func TestOnFlushHookReceivesStats(t *testing.T) {
	var stats []FlushStats
	app := New(Config{OnFlush: func(fs reactive.FlushStats) { stats = append(stats, fs) }})

	sig := NewSignal(0, OnScheduler(app.Scheduler()))
	sig.Watch(func(int) {})
	sig.Set(1)
	if err := app.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if len(stats) != 1 {
		t.Fatalf("expected one flush report, got %d", len(stats))
	}
	if stats[0].Signals != 1 || stats[0].Watchers != 1 {
		t.Errorf("stats = %+v", stats[0])
	}
}

func TestPatchObserverOption(t *testing.T) {
	var ops []patch.Op
	app := New(Config{PatchObserver: func(op patch.Op, tag string) { ops = append(ops, op) }})

	old := dom.NewElement("div")
	old.Append(dom.NewText("a"))
	new := dom.NewElement("div")
	new.Append(dom.NewText("b"))
	app.Patch(old, new)

	if len(ops) == 0 {
		t.Error("patch observer should have seen operations")
	}
}

func TestMutationObserverOption(t *testing.T) {
	var muts []attrs.Mutation
	app := New(Config{MutationObserver: func(m attrs.Mutation) { muts = append(muts, m) }})

	old := dom.NewElement("input")
	new := dom.NewElement("input")
	new.SetAttr("value", "typed")
	app.Patch(old, new)

	if len(muts) == 0 {
		t.Error("mutation observer should have seen mutations")
	}
}

func TestAttributeOptionsPropagate(t *testing.T) {
	app := New(Config{Attributes: &attrs.Options{EnableBoolean: true}})

	reg, ok := app.Plugins().Get(attrs.PluginName)
	if !ok {
		t.Fatal("registration missing")
	}
	opts := reg.Options.(attrs.Options)
	if !opts.EnableBoolean || opts.EnableAria {
		t.Errorf("options = %#v", opts)
	}
}

func TestFlushEmptyQueue(t *testing.T) {
	app := New(Config{})
	if err := app.Flush(); err != nil {
		t.Errorf("empty flush should be nil, got %v", err)
	}
}
