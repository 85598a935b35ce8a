package colour

import (
	"fmt"
	"sort"
	"strings"
)

// Entry is one name/value pair fed to BuildRegistry. A value starting with
// '#' is a colour literal, anything else names another entry.
type Entry struct {
	Name  string
	Value string
}

// Registry is an immutable name to colour mapping with all aliases resolved.
type Registry struct {
	colours map[string]Colour
}

// ParseError reports a literal entry that failed to parse.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error for %s: %v", e.Name, e.Err)
}

// Unwrap exposes the literal parse failure.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidReferenceError reports an alias whose target is not defined.
type InvalidReferenceError struct {
	Name   string
	Target string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("invalid colour name for %s: %s", e.Name, e.Target)
}

// CircularReferenceError reports an alias left unresolved when resolution
// stopped making progress. It names one such alias, not necessarily the
// shortest cycle.
type CircularReferenceError struct {
	Name   string
	Target string
}

func (e *CircularReferenceError) Error() string {
	return fmt.Sprintf("circular reference for %s: %s", e.Name, e.Target)
}

// BuildRegistry resolves entries into a Registry. Literals are parsed first,
// then aliases are resolved by repeated scans until none are left. When a
// name appears more than once the last entry wins.
func BuildRegistry(entries []Entry) (*Registry, error) {
	resolved := make(map[string]Colour, len(entries))
	pendingTargets := make(map[string]string)
	var pendingOrder []string

	for _, entry := range entries {
		if strings.HasPrefix(entry.Value, "#") {
			c, err := Parse(entry.Value)
			if err != nil {
				return nil, &ParseError{Name: entry.Name, Err: err}
			}
			resolved[entry.Name] = c
			if _, ok := pendingTargets[entry.Name]; ok {
				delete(pendingTargets, entry.Name)
				pendingOrder = removeName(pendingOrder, entry.Name)
			}
			continue
		}

		delete(resolved, entry.Name)
		if _, ok := pendingTargets[entry.Name]; !ok {
			pendingOrder = append(pendingOrder, entry.Name)
		}
		pendingTargets[entry.Name] = entry.Value
	}

	for _, name := range pendingOrder {
		target := pendingTargets[name]
		_, isPending := pendingTargets[target]
		_, isResolved := resolved[target]
		if !isPending && !isResolved {
			return nil, &InvalidReferenceError{Name: name, Target: target}
		}
	}

	for len(pendingOrder) > 0 {
		remaining := pendingOrder[:0]
		for _, name := range pendingOrder {
			c, ok := resolved[pendingTargets[name]]
			if !ok {
				remaining = append(remaining, name)
				continue
			}
			resolved[name] = c
		}

		if len(remaining) == len(pendingOrder) {
			name := remaining[0]
			return nil, &CircularReferenceError{Name: name, Target: pendingTargets[name]}
		}
		pendingOrder = remaining
	}

	return &Registry{colours: resolved}, nil
}

// Get returns the colour registered under name.
func (r *Registry) Get(name string) (Colour, bool) {
	if r == nil {
		return Colour{}, false
	}
	c, ok := r.colours[name]
	return c, ok
}

// MustGet returns the colour registered under name and panics when it is
// missing. Use it only for names validated at load time.
func (r *Registry) MustGet(name string) Colour {
	c, ok := r.Get(name)
	if !ok {
		panic(fmt.Sprintf("colour: no colour named %q", name))
	}
	return c
}

// Len returns the number of registered colours.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.colours)
}

// Names returns all registered names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.colours))
	for name := range r.colours {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func removeName(names []string, target string) []string {
	out := names[:0]
	for _, name := range names {
		if name != target {
			out = append(out, name)
		}
	}
	return out
}
