package option

// Option configures a value of type O in place.
type Option[O any] func(*O)

// Options is an ordered list of options.
type Options[O any] []Option[O]

// New creates an Options list from the given options.
func New[O any](opts ...Option[O]) Options[O] {
	return opts
}

// Prepend adds options at the beginning of the list.
// Can be used for adding default options.
func (o Options[O]) Prepend(opts ...Option[O]) Options[O] {
	return append(Options[O](opts), o...)
}

// Build applies the options over the given base value and returns the
// result.
func (o Options[O]) Build(base O) *O {
	Apply(&base, o...)
	return &base
}

// Apply applies the options to the value in order. nil options are
// skipped.
func Apply[O any](v *O, opts ...Option[O]) {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(v)
	}
}

// Failable is an Option that can fail.
type Failable[O any] func(*O) error

// ApplyFailable applies the options to the value in order, stopping at
// the first failure. The returned error is an *OptionError carrying the
// position of the failing option. nil options are skipped.
func ApplyFailable[O any](v *O, opts ...Failable[O]) error {
	for i, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(v); err != nil {
			return &OptionError{Index: i, Cause: err}
		}
	}
	return nil
}
