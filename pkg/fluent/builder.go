package fluent

// Func is a fluent method that transforms a value, returning the
// replacement.
type Func[T any] func(T) T

// MutFunc is a fluent method that mutates a value in place.
type MutFunc[T any] func(*T)

// Builder accumulates either a direct value or an ordered queue of
// fluent methods applied to a base supplied at Build time.
//
// A Builder[T] is effectively a StatefulBuilder[T, struct{}].
type Builder[T any] struct {
	inner StatefulBuilder[T, struct{}]
}

// New creates an empty Builder.
func New[T any]() *Builder[T] {
	return &Builder[T]{}
}

// From creates a Builder holding the given value.
func From[T any](v T) *Builder[T] {
	return New[T]().Value(v)
}

// WithPolicy selects how subsequent fluent methods combine. The default
// is Stack.
func (b *Builder[T]) WithPolicy(p Policy) *Builder[T] {
	b.inner.WithPolicy(p)
	return b
}

// Value sets a direct value on the builder.
//
// This overrides any contained state: if the builder currently holds
// queued fluent methods, those methods are discarded. Methods queued
// after this call apply on top of the value.
func (b *Builder[T]) Value(v T) *Builder[T] {
	b.inner.Value(v)
	return b
}

// Fluent queues a fluent method on the builder. nil methods are
// ignored.
//
// Under Stack the method runs after any previously queued methods, over
// either a held value or the constructed default. Under Override the
// method replaces the builder's state entirely.
func (b *Builder[T]) Fluent(f Func[T]) *Builder[T] {
	if f == nil {
		return b
	}
	b.inner.Fluent(struct{}{}, func(v T, _ struct{}) T {
		return f(v)
	})
	return b
}

// FluentMut is Fluent for a method that mutates the value instead of
// replacing it.
func (b *Builder[T]) FluentMut(f MutFunc[T]) *Builder[T] {
	if f == nil {
		return b
	}
	return b.Fluent(func(v T) T {
		f(&v)
		return v
	})
}

// Build resolves the builder into a value.
//
// The base is the held value if one was supplied, otherwise the result
// of calling base. A nil base producer yields the zero value of T.
// Queued fluent methods then apply in insertion order. The builder is
// reset to its empty state afterwards.
func (b *Builder[T]) Build(base func() T) T {
	var inner func(struct{}) T
	if base != nil {
		inner = func(struct{}) T {
			return base()
		}
	}
	return b.inner.Build(inner)
}
