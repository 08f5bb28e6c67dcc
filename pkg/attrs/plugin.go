package attrs

import (
	"github.com/lumen-ui/lumen/pkg/patch"
	"github.com/lumen-ui/lumen/pkg/plugin"
)

// Plugin metadata.
const (
	PluginName        = "attributes"
	PluginVersion     = "2.1.0"
	PluginDescription = "Category-aware attribute and property reconciliation (aria, boolean, data, dynamic, plain)"
)

// Host is what the plugin needs from an application context: the
// patcher whose strategy list it joins and the registry that records
// the installation. lumen.App satisfies this.
type Host interface {
	Patcher() *patch.Patcher
	Plugins() *plugin.Registry
}

// Install builds a Reconciler, appends it to the host patcher's
// attribute-syncer list, and records the registration. A nil host or a
// host without a patcher is tolerated: the returned Reconciler still
// works standalone through UpdateElementAttributes.
func Install(host Host, opts ...Option) *Reconciler {
	r := New(opts...)
	if host == nil {
		return r
	}
	if p := host.Patcher(); p != nil {
		p.Use(r)
	}
	if reg := host.Plugins(); reg != nil {
		reg.Register(plugin.Registration{
			Name:        PluginName,
			Version:     PluginVersion,
			Description: PluginDescription,
			Options:     r.Config(),
		})
	}
	return r
}

// Uninstall removes the reconciler from the host patcher's strategy
// list and drops the registration, restoring the patcher's default
// copy-all behavior. Uninstalling twice, or without a prior install,
// is a no-op.
func Uninstall(host Host) {
	if host == nil {
		return
	}
	if p := host.Patcher(); p != nil {
		p.Remove(PluginName)
	}
	if reg := host.Plugins(); reg != nil {
		reg.Deregister(PluginName)
	}
}
