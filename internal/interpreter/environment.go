package interpreter

import (
	"maps"
	"slices"
)

// GlobalPolicy controls what programs may do to existing globals.
//
// It only applies to the global environment, local scopes may always shadow
// and reassign.
type GlobalPolicy struct {
	// AllowRedefine permits 'var' to redeclare an already defined global.
	AllowRedefine bool

	// AllowAssign permits assignment to an already defined global.
	AllowAssign bool
}

// DefaultPolicy returns the default [GlobalPolicy], under which globals
// may be freely redefined and reassigned.
func DefaultPolicy() GlobalPolicy {
	return GlobalPolicy{
		AllowRedefine: true,
		AllowAssign:   true,
	}
}

// Environment is a single frame of variable bindings, linked to the frame
// that encloses it.
//
// The enclosing link is fixed at creation so the chain can never form a cycle, closures
// keep hold of the frame they were declared in and with it the whole chain
// above it.
type Environment struct {
	values    map[string]Value
	enclosing *Environment
	policy    GlobalPolicy
}

// NewEnvironment returns a new, empty [Environment] enclosed by enclosing.
//
// An Environment with no enclosing frame is the global environment, policy is
// only enforced there.
func NewEnvironment(enclosing *Environment, policy GlobalPolicy) *Environment {
	return &Environment{
		values:    make(map[string]Value),
		enclosing: enclosing,
		policy:    policy,
	}
}

// Enclosing returns the enclosing frame, nil for the global environment.
func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

// IsGlobal reports whether e is the global environment.
func (e *Environment) IsGlobal() bool {
	return e.enclosing == nil
}

// Define binds name to value in this frame, shadowing any binding of the same
// name in an enclosing frame.
//
// It only fails when redefining a global the policy forbids.
func (e *Environment) Define(name string, value Value) error {
	if e.IsGlobal() && !e.policy.AllowRedefine {
		if _, exists := e.values[name]; exists {
			return &Error{Name: name, Kind: RedefineGlobal}
		}
	}

	e.values[name] = value

	return nil
}

// Get looks up name in this frame and then each enclosing frame in turn.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.enclosing {
		if value, ok := env.values[name]; ok {
			return value, nil
		}
	}

	return nil, &Error{Name: name, Kind: UnboundVariable}
}

// Assign overwrites the nearest existing binding of name.
//
// Assignment never creates a binding, if no frame has name it is an
// [UnboundVariable] error.
func (e *Environment) Assign(name string, value Value) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name]; ok {
			return env.set(name, value)
		}
	}

	return &Error{Name: name, Kind: UnboundVariable}
}

// GetAt looks up name in the frame exactly distance hops up the chain.
func (e *Environment) GetAt(distance int, name string) (Value, error) {
	env := e.ancestor(distance)
	if env == nil {
		return nil, &Error{Name: name, Kind: UnboundVariable}
	}

	value, ok := env.values[name]
	if !ok {
		return nil, &Error{Name: name, Kind: UnboundVariable}
	}

	return value, nil
}

// AssignAt overwrites name in the frame exactly distance hops up the chain.
func (e *Environment) AssignAt(distance int, name string, value Value) error {
	env := e.ancestor(distance)
	if env == nil {
		return &Error{Name: name, Kind: UnboundVariable}
	}

	if _, ok := env.values[name]; !ok {
		return &Error{Name: name, Kind: UnboundVariable}
	}

	return env.set(name, value)
}

// Names returns the names bound in this frame, sorted.
func (e *Environment) Names() []string {
	return slices.Sorted(maps.Keys(e.values))
}

// set overwrites an existing binding in this frame, enforcing the policy.
func (e *Environment) set(name string, value Value) error {
	if e.IsGlobal() && !e.policy.AllowAssign {
		return &Error{Name: name, Kind: AssignGlobal}
	}

	e.values[name] = value

	return nil
}

// ancestor returns the frame distance hops up the chain, or nil if the
// chain is not that long.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for range distance {
		if env == nil {
			return nil
		}

		env = env.enclosing
	}

	return env
}
