// Package gen provides the Generator[T] abstraction and the built-in
// generators and combinators of spec.md §4.3-§4.4.
package gen

import (
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/shrink"
)

// Size controls the scale of container and numeric generators: a length or
// magnitude is drawn in [Min, Max].
type Size struct {
	Min int
	Max int
}

// DefaultContainerSize is the [0, 200] range spec.md §6 mandates as the
// default for container and string generators.
var DefaultContainerSize = Size{Min: 0, Max: 200}

// Generator is a function from a random source to a Shrinkable value
// (spec.md §3).
type Generator[T any] interface {
	Generate(r *random.Random) shrink.Shrinkable[T]
}

// Func adapts a plain function to the Generator interface.
type Func[T any] func(r *random.Random) shrink.Shrinkable[T]

// Generate implements Generator.
func (f Func[T]) Generate(r *random.Random) shrink.Shrinkable[T] { return f(r) }

// Just returns a constant generator with empty shrinks.
func Just[T any](v T) Generator[T] {
	return Func[T](func(_ *random.Random) shrink.Shrinkable[T] {
		return shrink.Of(v)
	})
}

// Lazy defers construction of a nested generator until first use, enabling
// recursive generator definitions (spec.md §4.4).
func Lazy[T any](thunk func() Generator[T]) Generator[T] {
	var cached Generator[T]
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		if cached == nil {
			cached = thunk()
		}
		return cached.Generate(r)
	})
}
