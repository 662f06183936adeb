package fluent

// StatefulBuilder accumulates either a direct value of type T or an
// ordered queue of fluent methods, while threading required state of
// type S through construction. The seed is handed to the default
// producer when no direct value was supplied, and each queued fluent
// method receives the seed it was queued with.
type StatefulBuilder[T, S any] struct {
	value   *T
	seed    S
	fluents []Func[T]
	policy  Policy
}

// FromSeed creates a StatefulBuilder from the given seed.
func FromSeed[T, S any](seed S) *StatefulBuilder[T, S] {
	return &StatefulBuilder[T, S]{seed: seed}
}

// FromValue creates a StatefulBuilder holding the given value.
func FromValue[T, S any](v T) *StatefulBuilder[T, S] {
	return &StatefulBuilder[T, S]{value: &v}
}

// FromFluent creates a StatefulBuilder from the given seed and fluent
// method.
func FromFluent[T, S any](seed S, f Func[T]) *StatefulBuilder[T, S] {
	b := FromSeed[T, S](seed)
	if f != nil {
		b.fluents = append(b.fluents, f)
	}
	return b
}

// FromFluentMut is FromFluent for a method that mutates the value
// instead of replacing it.
func FromFluentMut[T, S any](seed S, f MutFunc[T]) *StatefulBuilder[T, S] {
	if f == nil {
		return FromFluent[T, S](seed, nil)
	}
	return FromFluent[T, S](seed, func(v T) T {
		f(&v)
		return v
	})
}

// WithPolicy selects how subsequent fluent methods combine. The default
// is Stack.
func (b *StatefulBuilder[T, S]) WithPolicy(p Policy) *StatefulBuilder[T, S] {
	b.policy = p
	return b
}

// Value sets a direct value on the builder.
//
// This overrides any contained state: if the builder currently holds
// queued fluent methods, those methods are discarded. Methods queued
// after this call apply on top of the value.
func (b *StatefulBuilder[T, S]) Value(v T) *StatefulBuilder[T, S] {
	b.value = &v
	b.fluents = nil
	return b
}

// Fluent queues a fluent method carrying its own seed.
//
// Under Stack the method is appended and will run after any previously
// queued methods, over either a held value or the constructed default.
// Under Override the method replaces the builder's state entirely: a
// held value or previously queued methods are discarded and the
// builder's seed becomes the one given here.
func (b *StatefulBuilder[T, S]) Fluent(seed S, f func(T, S) T) *StatefulBuilder[T, S] {
	if f == nil {
		return b
	}
	if b.policy == Override {
		b.value = nil
		b.seed = seed
		b.fluents = nil
	}
	b.fluents = append(b.fluents, func(v T) T {
		return f(v, seed)
	})
	return b
}

// FluentMut is Fluent for a method that mutates the value instead of
// replacing it.
func (b *StatefulBuilder[T, S]) FluentMut(seed S, f func(*T, S)) *StatefulBuilder[T, S] {
	if f == nil {
		return b
	}
	return b.Fluent(seed, func(v T, s S) T {
		f(&v, s)
		return v
	})
}

// Build resolves the builder into a value.
//
// The base is the held value if one was supplied, otherwise the result
// of calling base with the builder's seed. A nil base producer yields
// the zero value of T. Queued fluent methods then apply in insertion
// order. The builder is reset to its empty state afterwards.
func (b *StatefulBuilder[T, S]) Build(base func(S) T) T {
	var v T
	switch {
	case b.value != nil:
		v = *b.value
	case base != nil:
		v = base(b.seed)
	}
	for _, f := range b.fluents {
		v = f(v)
	}
	b.reset()
	return v
}

func (b *StatefulBuilder[T, S]) reset() {
	var seed S
	b.value = nil
	b.seed = seed
	b.fluents = nil
}
