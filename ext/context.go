package ext

import (
	"strings"

	"github.com/yangkit/yangkit/dict"
	"github.com/yangkit/yangkit/ylog"
)

// maxPathLen bounds the diagnostic path a CompileContext will render.
const maxPathLen = 4078

// CompileContext carries the compiler's position and work lists through a
// compilation, so plugins can report where a failure happened and enqueue
// work the compiler finishes later.
type CompileContext struct {
	// Module is the module being compiled.
	Module string
	// Options is a bitfield of compile flags, opaque to plugins.
	Options uint32

	// Work lists. Groupings is stack-ordered for circular-use detection;
	// Unres collects unresolved leafref/xpath targets; Dflts collects
	// incomplete default values; TpdfChain tracks the typedef chain being
	// resolved.
	Groupings Set[any]
	Unres     Set[any]
	Dflts     Set[any]
	TpdfChain Set[any]

	names     *dict.Dict
	path      []string
	pathBytes int
	truncated bool
}

// NewCompileContext returns a context for compiling module, sharing the
// toolchain's intern table. A nil names creates a private one.
func NewCompileContext(module string, names *dict.Dict) *CompileContext {
	if names == nil {
		names = dict.New()
	}
	return &CompileContext{
		Module: module,
		names:  names,
	}
}

// Intern returns the canonical copy of s from the context's intern table.
func (c *CompileContext) Intern(s string) string {
	return c.names.Insert(s)
}

// PushPath descends the diagnostic path into name. Each Push must be
// balanced by a PopPath.
func (c *CompileContext) PushPath(name string) {
	c.path = append(c.path, c.names.Insert(name))
	c.pathBytes += len(name) + 1
	if c.pathBytes > maxPathLen && !c.truncated {
		c.truncated = true
		ylog.Warnf(c.Path(), "diagnostic path exceeds %d bytes; rendering truncated", maxPathLen)
	}
}

// PopPath removes the last path segment. Popping an empty path is a no-op.
func (c *CompileContext) PopPath() {
	if len(c.path) == 0 {
		return
	}
	last := c.path[len(c.path)-1]
	c.path = c.path[:len(c.path)-1]
	c.pathBytes -= len(last) + 1
	if c.truncated && c.pathBytes <= maxPathLen {
		// Back under the bound; the next overflow is a new event.
		c.truncated = false
	}
	c.names.Remove(last)
}

// Path renders the current diagnostic path, "/" when at the root. The
// rendering is capped at maxPathLen; a too-deep path ends in "/...".
func (c *CompileContext) Path() string {
	if len(c.path) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range c.path {
		if b.Len()+1+len(seg) > maxPathLen-4 {
			b.WriteString("/...")
			break
		}
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}
