package ext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yangkit/yangkit/ylog"
)

func TestRegisterValidation(t *testing.T) {
	r := NewRegistry()

	require.Error(t, r.Register("", "", "annotation", &Plugin{}))
	require.Error(t, r.Register("ietf-yang-metadata", "", "", &Plugin{}))
	require.Error(t, r.Register("ietf-yang-metadata", "", "annotation", nil))
	require.Equal(t, 0, r.Len())

	require.NoError(t, r.Register("ietf-yang-metadata", "", "annotation", &Plugin{}))
	require.Equal(t, 1, r.Len())

	err := r.Register("ietf-yang-metadata", "", "annotation", &Plugin{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "already registered")
}

func TestRegisterAssignsID(t *testing.T) {
	r := NewRegistry()

	p := &Plugin{}
	require.NoError(t, r.Register("m", "", "e", p))
	require.NotEmpty(t, p.ID)

	q := &Plugin{ID: "vendor-build-7"}
	require.NoError(t, r.Register("m", "2024-01-15", "e", q))
	require.Equal(t, "vendor-build-7", q.ID)
}

func TestFindPrefersExactRevision(t *testing.T) {
	r := NewRegistry()

	anyRev := &Plugin{ID: "any"}
	exact := &Plugin{ID: "exact"}
	require.NoError(t, r.Register("m", "", "e", anyRev))
	require.NoError(t, r.Register("m", "2024-01-15", "e", exact))

	require.Same(t, exact, r.Find("m", "2024-01-15", "e"))
	require.Same(t, anyRev, r.Find("m", "2019-06-01", "e"))
	require.Same(t, anyRev, r.Find("m", "", "e"))
	require.Nil(t, r.Find("m", "2024-01-15", "other"))
	require.Nil(t, r.Find("other", "2024-01-15", "e"))
}

func TestInstanceLogfAttributesPlugin(t *testing.T) {
	var gotMsg, gotPath string
	prev := ylog.SetCallback(func(_ ylog.Level, msg, path string) {
		gotMsg, gotPath = msg, path
	})
	defer ylog.SetCallback(prev)

	inst := &Instance{Name: "annotation", Plugin: &Plugin{ID: "p1"}}
	inst.Logf(ylog.LevelError, "/m/leaf", "bad argument %q", "x")
	require.Equal(t, `Extension plugin "p1": bad argument "x"`, gotMsg)
	require.Equal(t, "/m/leaf", gotPath)
}

func TestCompileContextPath(t *testing.T) {
	c := NewCompileContext("ietf-interfaces", nil)
	require.Equal(t, "/", c.Path())

	c.PushPath("interfaces")
	c.PushPath("interface")
	c.PushPath("name")
	require.Equal(t, "/interfaces/interface/name", c.Path())

	c.PopPath()
	require.Equal(t, "/interfaces/interface", c.Path())

	c.PopPath()
	c.PopPath()
	require.Equal(t, "/", c.Path())

	// Unbalanced pops are harmless.
	c.PopPath()
	require.Equal(t, "/", c.Path())
}

func TestCompileContextPathBounded(t *testing.T) {
	prev := ylog.SetCallback(func(ylog.Level, string, string) {})
	defer ylog.SetCallback(prev)

	c := NewCompileContext("m", nil)
	seg := strings.Repeat("n", 100)
	for i := 0; i < 50; i++ {
		c.PushPath(seg)
	}
	p := c.Path()
	require.LessOrEqual(t, len(p), maxPathLen)
	require.True(t, strings.HasSuffix(p, "/..."))
}

func TestCompileContextTruncationRearms(t *testing.T) {
	var warns int
	prev := ylog.SetCallback(func(level ylog.Level, _, _ string) {
		if level == ylog.LevelWarning {
			warns++
		}
	})
	defer ylog.SetCallback(prev)

	c := NewCompileContext("m", nil)
	seg := strings.Repeat("n", 100)
	for i := 0; i < 50; i++ {
		c.PushPath(seg)
	}
	require.Equal(t, 1, warns)

	// Popping back under the bound re-arms the overflow warning.
	for i := 0; i < 50; i++ {
		c.PopPath()
	}
	for i := 0; i < 50; i++ {
		c.PushPath(seg)
	}
	require.Equal(t, 2, warns)
}

func TestSetSemantics(t *testing.T) {
	var s Set[string]

	require.True(t, s.Add("a"))
	require.True(t, s.Add("b"))
	require.False(t, s.Add("a"))
	require.Equal(t, 2, s.Len())
	require.True(t, s.Contains("a"))
	require.False(t, s.Contains("c"))
	require.Equal(t, []string{"a", "b"}, s.Items())

	require.True(t, s.Remove("a"))
	require.False(t, s.Remove("a"))
	require.Equal(t, 1, s.Len())
	require.True(t, s.Contains("b"))
}

func TestSetStackUse(t *testing.T) {
	var s Set[string]
	s.Add("uses-1")
	s.Add("uses-2")

	v, ok := s.Pop()
	require.True(t, ok)
	require.Equal(t, "uses-2", v)
	require.False(t, s.Contains("uses-2"))

	v, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, "uses-1", v)

	_, ok = s.Pop()
	require.False(t, ok)
}
