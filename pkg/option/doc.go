// Package option implements the functional options pattern for
// downstream construction APIs.
//
// An Option is a function that configures a value in place. Options
// compose into an ordered Options list that can be built over a base
// value, or applied directly with Apply. Failable covers options that
// can reject their input; ApplyFailable stops at the first failure and
// reports which option failed.
//
// Example usage:
//
//	import "github.com/fluentbuild/go-sdk/pkg/option"
//
//	type config struct {
//		Host string
//		Port int
//	}
//
//	opts := option.New(
//		func(c *config) { c.Port = 8080 },
//	).Prepend(
//		func(c *config) { c.Host = "localhost" },
//	)
//
//	cfg := opts.Build(config{})
//	// cfg.Host == "localhost", cfg.Port == 8080
package option
