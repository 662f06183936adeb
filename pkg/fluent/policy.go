package fluent

// Policy controls how successive fluent methods combine on a builder.
type Policy int

const (
	// Stack queues fluent methods and applies them in insertion order.
	Stack Policy = iota
	// Override keeps only the most recent fluent method. Each fluent
	// call replaces the builder's state, including a held value.
	Override
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Stack:
		return "stack"
	case Override:
		return "override"
	default:
		return "unknown"
	}
}
