package fluent_test

import (
	"fmt"

	"github.com/fluentbuild/go-sdk/pkg/fluent"
)

// Example demonstrates resolving a builder against a default value.
func Example() {
	b := fluent.New[string]().
		FluentMut(func(s *string) { *s += " fluent1" }).
		FluentMut(func(s *string) { *s += " fluent2" })

	v := b.Build(func() string { return "a default value" })

	fmt.Println(v)
	// Output:
	// a default value fluent1 fluent2
}

// ExampleBuilder_Value demonstrates that a directly supplied value is
// used instead of constructing the default.
func ExampleBuilder_Value() {
	b := fluent.New[string]().Value("a value")

	v := b.Build(func() string { return "a default value" })

	fmt.Println(v)
	// Output:
	// a value
}

// ExampleStatefulBuilder demonstrates threading required state through
// construction.
func ExampleStatefulBuilder() {
	type server struct {
		name string
		port int
	}

	b := fluent.FromSeed[server, string]("api").
		FluentMut("api", func(s *server, name string) {
			s.port = 8080
		})

	v := b.Build(func(name string) server {
		return server{name: name}
	})

	fmt.Printf("%s:%d\n", v.name, v.port)
	// Output:
	// api:8080
}
