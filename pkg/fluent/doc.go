// Package fluent provides standard behaviour for constructing values
// from a given source, or by mutating a default that is supplied later.
//
// The package is intended to be embedded in other builders rather than
// consumed by end users directly. A Builder either holds one direct
// value or accumulates an ordered queue of fluent methods, and resolves
// to a single final value when Build is called:
//   - A direct value set with Value wins over any previously queued
//     fluent methods.
//   - Fluent methods queued after a value apply on top of that value.
//   - With neither, Build constructs the caller-supplied default.
//
// Example usage:
//
//	import "github.com/fluentbuild/go-sdk/pkg/fluent"
//
//	b := fluent.New[string]().
//		FluentMut(func(s *string) { *s += " fluent1" }).
//		FluentMut(func(s *string) { *s += " fluent2" })
//
//	v := b.Build(func() string { return "a default value" })
//	// v == "a default value fluent1 fluent2"
//
// StatefulBuilder additionally threads required state through
// construction, so a downstream builder can defer creating its value
// until a seed (a name, an identifier, a parent handle) is known.
package fluent
