package parse

import "fmt"

// Namespace is a scoped dictionary. Values set locally inside a group are
// rolled back when the group ends; values set globally survive every
// enclosing group.
type Namespace[T any] struct {
	current  map[string]T
	builtins map[string]T
	undefs   []map[string]undo[T]
}

// undo records the value a name had before its first local assignment in a
// group. ok is false when the name was not set.
type undo[T any] struct {
	val T
	ok  bool
}

// NewNamespace creates a namespace backed by read-only builtins. Global
// assignments are written to current, so a caller may pass the same map
// across several namespaces to persist definitions between them.
func NewNamespace[T any](builtins, current map[string]T) *Namespace[T] {
	if current == nil {
		current = make(map[string]T)
	}
	return &Namespace[T]{current: current, builtins: builtins}
}

// BeginGroup starts a new nesting level.
func (ns *Namespace[T]) BeginGroup() {
	ns.undefs = append(ns.undefs, make(map[string]undo[T]))
}

// EndGroup ends the innermost nesting level and restores every name that
// was set locally within it.
func (ns *Namespace[T]) EndGroup() error {
	if len(ns.undefs) == 0 {
		return newParseError("Unbalanced namespace destruction: attempt to pop global namespace; please report this as a bug",
			nil, ErrUnbalancedNamespace)
	}
	top := ns.undefs[len(ns.undefs)-1]
	ns.undefs = ns.undefs[:len(ns.undefs)-1]
	for name, u := range top {
		if u.ok {
			ns.current[name] = u.val
		} else {
			delete(ns.current, name)
		}
	}
	return nil
}

// EndGroups ends every open nesting level.
func (ns *Namespace[T]) EndGroups() {
	for len(ns.undefs) > 0 {
		_ = ns.EndGroup()
	}
}

// Depth returns the number of open nesting levels.
func (ns *Namespace[T]) Depth() int {
	return len(ns.undefs)
}

// Has reports whether name is defined, either in the current scope or as a
// builtin.
func (ns *Namespace[T]) Has(name string) bool {
	if _, ok := ns.current[name]; ok {
		return true
	}
	_, ok := ns.builtins[name]
	return ok
}

// Get returns the current value of name.
func (ns *Namespace[T]) Get(name string) (T, bool) {
	if v, ok := ns.current[name]; ok {
		return v, true
	}
	v, ok := ns.builtins[name]
	return v, ok
}

// Set assigns value to name. A local assignment is undone at the end of the
// innermost group; a global one removes pending undo entries for name at
// every level so that it persists.
func (ns *Namespace[T]) Set(name string, value T, global bool) {
	ns.set(name, undo[T]{val: value, ok: true}, global)
}

// Delete removes the local definition of name, exposing the builtin if any.
func (ns *Namespace[T]) Delete(name string, global bool) {
	ns.set(name, undo[T]{}, global)
}

func (ns *Namespace[T]) set(name string, u undo[T], global bool) {
	if global {
		for _, level := range ns.undefs {
			delete(level, name)
		}
		if len(ns.undefs) > 0 {
			ns.undefs[len(ns.undefs)-1][name] = u
		}
	} else if len(ns.undefs) > 0 {
		top := ns.undefs[len(ns.undefs)-1]
		if _, seen := top[name]; !seen {
			prev, ok := ns.current[name]
			top[name] = undo[T]{val: prev, ok: ok}
		}
	}
	if u.ok {
		ns.current[name] = u.val
	} else {
		delete(ns.current, name)
	}
}

func (ns *Namespace[T]) String() string {
	return fmt.Sprintf("Namespace(depth=%d, defined=%d)", len(ns.undefs), len(ns.current))
}
