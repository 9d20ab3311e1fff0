package tween

import (
	"fmt"
	"reflect"
)

// Accessor translates between a target object's fields and a flat float
// buffer. Implement one per animatable type and register it with a
// [Registry]. The attributeGroup parameter selects which group of fields
// the accessor reads and writes (e.g. position vs. color), so one accessor
// can serve several kinds of interpolation on the same type.
type Accessor interface {
	// GetValues reads the target's current values for the given attribute
	// group into buffer and returns how many were written. The count must
	// be within [1, MaxCombined].
	GetValues(target any, attributeGroup int, buffer []float32) int

	// SetValues writes buffer back to the target's fields for the given
	// attribute group.
	SetValues(target any, attributeGroup int, buffer []float32)
}

// NoAccessorError is the failure reported when a [Registry] lookup finds no
// accessor for a target, neither by exact type nor through the fallback list.
type NoAccessorError struct {
	// Target is the object the lookup was performed for.
	Target any
}

func (e *NoAccessorError) Error() string {
	return fmt.Sprintf("tween: no accessor registered for target type %T", e.Target)
}

// Registry maps target types to their Accessors. Unlike a global map with
// type-hierarchy walking, lookups are explicit: exact concrete type first,
// then the target itself if it implements [Accessor], then each registered
// fallback in order.
//
// A Registry is not safe for concurrent mutation; register accessors before
// handing it to an [Engine].
type Registry struct {
	exact     map[reflect.Type]Accessor
	fallbacks []fallbackAccessor
}

type fallbackAccessor struct {
	matches  func(target any) bool
	accessor Accessor
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{exact: make(map[reflect.Type]Accessor)}
}

// Register associates an accessor with the concrete type of prototype.
// Registering a second accessor for the same type replaces the first.
func (r *Registry) Register(prototype any, accessor Accessor) {
	if prototype == nil || accessor == nil {
		panic("tween: Register requires a non-nil prototype and accessor")
	}
	r.exact[reflect.TypeOf(prototype)] = accessor
}

// RegisterFallback appends an accessor to the ordered fallback list. During
// lookup, fallbacks are tried in registration order after the exact-type map
// misses; the first one whose matches predicate returns true wins.
func (r *Registry) RegisterFallback(matches func(target any) bool, accessor Accessor) {
	if matches == nil || accessor == nil {
		panic("tween: RegisterFallback requires a non-nil predicate and accessor")
	}
	r.fallbacks = append(r.fallbacks, fallbackAccessor{matches, accessor})
}

// Accessor resolves the accessor for target, or returns a *NoAccessorError.
func (r *Registry) Accessor(target any) (Accessor, error) {
	if a, ok := r.exact[reflect.TypeOf(target)]; ok {
		return a, nil
	}
	if a, ok := target.(Accessor); ok {
		return a, nil
	}
	for _, fb := range r.fallbacks {
		if fb.matches(target) {
			return fb.accessor, nil
		}
	}
	return nil, &NoAccessorError{Target: target}
}
