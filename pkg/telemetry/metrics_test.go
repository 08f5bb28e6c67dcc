package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/lumen-ui/lumen/pkg/attrs"
	"github.com/lumen-ui/lumen/pkg/dom"
	"github.com/lumen-ui/lumen/pkg/patch"
	"github.com/lumen-ui/lumen/pkg/reactive"
)

func newTestMetrics(t *testing.T) (*Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(WithRegistry(reg)), reg
}

func TestFlushHookCountsStats(t *testing.T) {
	m, _ := newTestMetrics(t)
	hook := m.FlushHook()

	hook(reactive.FlushStats{Signals: 3, Watchers: 7, Duration: time.Millisecond})
	hook(reactive.FlushStats{Signals: 1, Watchers: 1, Err: errors.New("boom")})

	if got := testutil.ToFloat64(m.flushesTotal); got != 2 {
		t.Errorf("flushes_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.signalsTotal); got != 4 {
		t.Errorf("signals_flushed_total = %v, want 4", got)
	}
	if got := testutil.ToFloat64(m.watcherCalls); got != 8 {
		t.Errorf("watcher_calls_total = %v, want 8", got)
	}
	if got := testutil.ToFloat64(m.flushErrors); got != 1 {
		t.Errorf("flush_errors_total = %v, want 1", got)
	}
}

func TestFlushHookWiredToScheduler(t *testing.T) {
	m, _ := newTestMetrics(t)
	sched := reactive.NewScheduler(reactive.WithFlushHook(m.FlushHook()))

	sig := reactive.NewSignal(0, reactive.OnScheduler(sched))
	sig.Watch(func(int) {})
	sig.Set(1)
	if err := sched.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	if got := testutil.ToFloat64(m.flushesTotal); got != 1 {
		t.Errorf("flushes_total = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.watcherCalls); got != 1 {
		t.Errorf("watcher_calls_total = %v, want 1", got)
	}
}

func TestPatchObserverCountsOps(t *testing.T) {
	m, _ := newTestMetrics(t)
	p := patch.New(patch.WithObserver(m.PatchObserver()))

	old := dom.NewElement("div")
	old.Append(dom.NewText("a"))
	new := dom.NewElement("div")
	new.Append(dom.NewText("b"))
	p.Apply(old, new)

	if got := testutil.ToFloat64(m.patchOps.WithLabelValues(patch.OpSetText.String())); got != 1 {
		t.Errorf("patch_ops_total{op=SetText} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.patchOps.WithLabelValues(patch.OpSyncAttrs.String())); got != 1 {
		t.Errorf("patch_ops_total{op=SyncAttrs} = %v, want 1", got)
	}
}

func TestMutationObserverCountsByCategoryAndKind(t *testing.T) {
	m, _ := newTestMetrics(t)
	r := attrs.New(attrs.WithMutationObserver(m.MutationObserver()))

	old := dom.NewElement("button")
	new := dom.NewElement("button")
	new.SetAttr("disabled", "")
	r.UpdateElementAttributes(old, new)

	setAttr := testutil.ToFloat64(m.attrMutations.WithLabelValues("boolean", "SetAttr"))
	setProp := testutil.ToFloat64(m.attrMutations.WithLabelValues("boolean", "SetProp"))
	if setAttr != 1 || setProp != 1 {
		t.Errorf("boolean mutations: SetAttr=%v SetProp=%v, want 1 and 1", setAttr, setProp)
	}
}

func TestNamespaceAndLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(
		WithRegistry(reg),
		WithNamespace("app"),
		WithSubsystem("ui"),
		WithConstLabels(prometheus.Labels{"tier": "web"}),
	)
	m.FlushHook()(reactive.FlushStats{Signals: 1})

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "app_ui_flushes_total" {
			found = true
		}
	}
	if !found {
		t.Error("expected metric app_ui_flushes_total to be registered")
	}
}
