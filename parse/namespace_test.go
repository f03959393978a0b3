package parse

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNamespace_Groups(t *testing.T) {
	builtins := map[string]int{"b": 1}
	ns := NewNamespace(builtins, nil)

	v, ok := ns.Get("b")
	require.True(t, ok)
	require.Equal(t, 1, v)

	ns.BeginGroup()
	ns.Set("b", 2, false)
	ns.Set("x", 3, false)
	require.Equal(t, 1, ns.Depth())

	v, _ = ns.Get("b")
	require.Equal(t, 2, v)

	require.NoError(t, ns.EndGroup())
	v, _ = ns.Get("b")
	require.Equal(t, 1, v)
	require.False(t, ns.Has("x"))
	require.Equal(t, 1, builtins["b"], "builtins must not be modified")
}

func TestNamespace_Global(t *testing.T) {
	current := map[string]int{}
	ns := NewNamespace(nil, current)

	ns.BeginGroup()
	ns.BeginGroup()
	ns.Set("x", 1, false)
	ns.Set("g", 7, true)
	ns.EndGroups()

	require.False(t, ns.Has("x"))
	v, ok := ns.Get("g")
	require.True(t, ok)
	require.Equal(t, 7, v)
	require.Equal(t, 7, current["g"])
}

func TestNamespace_LocalAfterGlobal(t *testing.T) {
	ns := NewNamespace[string](nil, nil)

	ns.BeginGroup()
	ns.Set("a", "global", true)
	ns.BeginGroup()
	ns.Set("a", "local", false)
	v, _ := ns.Get("a")
	require.Equal(t, "local", v)
	require.NoError(t, ns.EndGroup())

	v, _ = ns.Get("a")
	require.Equal(t, "global", v)
	require.NoError(t, ns.EndGroup())

	v, _ = ns.Get("a")
	require.Equal(t, "global", v)
}

func TestNamespace_Delete(t *testing.T) {
	ns := NewNamespace(map[string]int{"b": 1}, nil)

	ns.BeginGroup()
	ns.Set("b", 2, false)
	ns.Delete("b", false)
	v, ok := ns.Get("b")
	require.True(t, ok)
	require.Equal(t, 1, v, "deleting exposes the builtin")

	ns.Set("y", 5, true)
	ns.Delete("y", true)
	require.NoError(t, ns.EndGroup())
	require.False(t, ns.Has("y"))
}

func TestNamespace_Unbalanced(t *testing.T) {
	ns := NewNamespace[int](nil, nil)
	err := ns.EndGroup()
	require.ErrorIs(t, err, ErrUnbalancedNamespace)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}
