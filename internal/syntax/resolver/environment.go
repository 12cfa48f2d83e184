package resolver

import "maps"

// environment is a single lexical scope known to the resolver.
//
// Names map to whether they have finished being defined, a name that is
// declared but not yet defined is one whose initialiser is being resolved.
type environment struct {
	names  map[string]bool
	parent *environment
}

// newEnvironment creates a new, empty [environment] with no parent.
func newEnvironment() *environment {
	return &environment{
		names:  make(map[string]bool),
		parent: nil,
	}
}

// isGlobal reports whether e is the outermost (global) scope.
func (e *environment) isGlobal() bool {
	return e.parent == nil
}

// declare declares a name in this scope, marking it as not yet defined.
//
// In the global scope, redeclaring a name that is already defined leaves it
// defined, so 'var a = a + 1;' may refer to the previous global a.
func (e *environment) declare(name string) {
	if e.isGlobal() && e.names[name] {
		return
	}

	e.names[name] = false
}

// define marks a name in this scope as fully defined.
func (e *environment) define(name string) {
	e.names[name] = true
}

// initialising reports whether name is declared in this scope but it's
// definition is not yet complete.
func (e *environment) initialising(name string) bool {
	defined, ok := e.names[name]
	return ok && !defined
}

// distance walks up the scope chain to find a name, returning the number of
// scopes between e and the one that declares it.
//
// Globals are looked up dynamically at runtime so a name only found in the global
// scope (or nowhere at all) reports false.
func (e *environment) distance(name string) (int, bool) {
	hops := 0
	for env := e; env != nil && !env.isGlobal(); env = env.parent {
		if _, ok := env.names[name]; ok {
			return hops, true
		}

		hops++
	}

	return 0, false
}

// forget removes any names that were declared but never defined, these are
// left behind when resolution stops part way through a declaration.
func (e *environment) forget() {
	maps.DeleteFunc(e.names, func(_ string, defined bool) bool {
		return !defined
	})
}

// child creates a new empty [environment] using the calling one as a parent.
func (e *environment) child() *environment {
	return &environment{
		names:  make(map[string]bool),
		parent: e,
	}
}
