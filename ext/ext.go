// Package ext is the extension-plugin boundary of the toolchain.
//
// A schema module may define extensions whose semantics the core compiler
// does not know. Plugins supply those semantics: each plugin registers for
// one extension, identified by the module that defines it, optionally the
// module revision, and the extension name. The compiler looks plugins up
// while compiling and hands them a CompileContext tracking where in the
// schema it currently is.
package ext

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yangkit/yangkit/dict"
	"github.com/yangkit/yangkit/ylog"
)

// ParsedInstance is an extension instance as the schema parser produced
// it, before compilation.
type ParsedInstance struct {
	Name     string
	Argument string
}

// Instance is the compiled form of an extension instance. Plugins attach
// their extension-specific payload to Data during Compile and release it
// in Free.
type Instance struct {
	Name     string
	Argument string
	Plugin   *Plugin
	Data     any
}

// Logf reports a message attributed to the instance's plugin through the
// toolchain's logging sink.
func (inst *Instance) Logf(level ylog.Level, path, format string, args ...any) {
	if inst != nil && inst.Plugin != nil {
		format = fmt.Sprintf("Extension plugin %q: %s", inst.Plugin.ID, format)
	}
	ylog.Logf(level, path, format, args...)
}

// CompileFunc compiles a parsed extension instance. The compiled Instance
// is prepared by the caller; the plugin only adds its own data.
type CompileFunc func(ctx *CompileContext, parsed *ParsedInstance, compiled *Instance) error

// ValidateFunc decides whether a data node conforms to the extension.
// The node is opaque to this boundary.
type ValidateFunc func(inst *Instance, node any) error

// FreeFunc releases whatever CompileFunc attached to the instance.
type FreeFunc func(inst *Instance)

// Plugin implements one extension. ID distinguishes plugin builds for
// external tools; when left empty, Register assigns a UUID.
type Plugin struct {
	ID       string
	Compile  CompileFunc
	Validate ValidateFunc
	Free     FreeFunc
}

type registration struct {
	module   string
	revision string
	name     string
	plugin   *Plugin
}

// Registry maps {module, revision, extension name} to plugins. An entry
// registered with an empty revision applies to any revision of the module;
// prefer per-revision entries, since future revisions of a module may
// change an extension's meaning.
type Registry struct {
	entries []registration
	names   *dict.Dict
}

func NewRegistry() *Registry {
	return &Registry{names: dict.New()}
}

// Register adds a plugin for the named extension. Module and name are
// required; revision may be empty to match any revision. Registering the
// same {module, revision, name} twice is an error.
func (r *Registry) Register(module, revision, name string, p *Plugin) error {
	if module == "" || name == "" {
		return fmt.Errorf("ext: module and extension name are required")
	}
	if p == nil {
		return fmt.Errorf("ext: nil plugin for %s:%s", module, name)
	}
	for _, e := range r.entries {
		if e.module == module && e.revision == revision && e.name == name {
			return fmt.Errorf("ext: extension %s:%s (revision %q) already registered", module, name, revision)
		}
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.entries = append(r.entries, registration{
		module:   r.names.Insert(module),
		revision: revision,
		name:     r.names.Insert(name),
		plugin:   p,
	})
	return nil
}

// Find returns the plugin registered for the extension, preferring an
// exact-revision entry over an any-revision one. It returns nil when no
// entry matches.
func (r *Registry) Find(module, revision, name string) *Plugin {
	var anyRevision *Plugin
	for _, e := range r.entries {
		if e.module != module || e.name != name {
			continue
		}
		if e.revision == revision {
			return e.plugin
		}
		if e.revision == "" {
			anyRevision = e.plugin
		}
	}
	return anyRevision
}

// Len reports the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
