package gen

import (
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/internal/stream"
	"github.com/lucaskalb/proptest/shrink"
)

// Optional holds either a present value or nothing, used by the Nullable
// generator since Go has no built-in option type for arbitrary T.
type Optional[T any] struct {
	Valid bool
	Value T
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] { return Optional[T]{Valid: true, Value: v} }

// None returns an absent value.
func None[T any]() Optional[T] { return Optional[T]{} }

// Nullable generates Optional[T], present with probability p (default 0.95
// if p is negative, matching the original generator/nullable.hpp's bias toward
// presence so that absence doesn't dominate every run). A present value's
// shrink tree offers None first, before any shrink of the inner value,
// since an absent value is always a simpler counterexample than a present
// one and removing it collapses a whole branch of the property under test.
// None is offered only at the root, not again below the inner shrinks.
func Nullable[T any](elem Generator[T], p float64) Generator[Optional[T]] {
	if p < 0 {
		p = 0.95
	}
	return Func[Optional[T]](func(r *random.Random) shrink.Shrinkable[Optional[T]] {
		if !r.Bool(p) {
			return shrink.Of(None[T]())
		}
		inner := elem.Generate(r)
		withNone := shrink.With(Some(inner.Value()), func() stream.Stream[shrink.Shrinkable[Optional[T]]] {
			return stream.Cons(shrink.Of(None[T]()), func() stream.Stream[shrink.Shrinkable[Optional[T]]] {
				return stream.Transform(inner.Shrinks(), func(s shrink.Shrinkable[T]) shrink.Shrinkable[Optional[T]] {
					return optionalShrinkable(s)
				})
			})
		})
		return withNone
	})
}

func optionalShrinkable[T any](s shrink.Shrinkable[T]) shrink.Shrinkable[Optional[T]] {
	return shrink.With(Some(s.Value()), func() stream.Stream[shrink.Shrinkable[Optional[T]]] {
		return stream.Transform(s.Shrinks(), func(inner shrink.Shrinkable[T]) shrink.Shrinkable[Optional[T]] {
			return optionalShrinkable(inner)
		})
	})
}

// PointerOf adapts Nullable to a *T generator, nil for None.
func PointerOf[T any](elem Generator[T], p float64) Generator[*T] {
	opt := Nullable(elem, p)
	return Func[*T](func(r *random.Random) shrink.Shrinkable[*T] {
		return shrink.Map(opt.Generate(r), func(o Optional[T]) *T {
			if !o.Valid {
				return nil
			}
			v := o.Value
			return &v
		})
	})
}
