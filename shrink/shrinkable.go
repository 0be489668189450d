// Package shrink implements Shrinkable[T] (spec.md §3, §4.2): a value
// paired with a lazy tree of strictly smaller candidates, plus the
// combinators generators compose shrink trees from.
package shrink

import "github.com/lucaskalb/proptest/internal/stream"

// Shrinkable carries a current value and a thunk producing a stream of
// smaller candidate Shrinkables. The root value is stable: reading it
// twice yields equal values (Go value semantics give this for free as long
// as T itself isn't mutated through a pointer/slice after construction).
type Shrinkable[T any] struct {
	value     T
	shrinksFn func() stream.Stream[Shrinkable[T]]
}

// Of returns a Shrinkable with no further shrinks.
func Of[T any](v T) Shrinkable[T] {
	return Shrinkable[T]{value: v}
}

// With returns a Shrinkable whose shrinks are produced, lazily, by
// producer.
func With[T any](v T, producer func() stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return Shrinkable[T]{value: v, shrinksFn: producer}
}

// Value returns the current value.
func (s Shrinkable[T]) Value() T { return s.value }

// Shrinks returns the (possibly empty) stream of smaller candidates. May
// be called arbitrarily many times; each call yields an equivalent stream.
func (s Shrinkable[T]) Shrinks() stream.Stream[Shrinkable[T]] {
	if s.shrinksFn == nil {
		return stream.Empty[Shrinkable[T]]()
	}
	return s.shrinksFn()
}

// WithShrinks returns a copy of s whose shrink stream is replaced entirely
// by producer(), discarding s's own shrinks.
func WithShrinks[T any](s Shrinkable[T], producer func() stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return With(s.value, producer)
}

// Concat appends g(s)'s stream after s's existing shrinks.
func Concat[T any](s Shrinkable[T], g func(Shrinkable[T]) stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	return With(s.value, func() stream.Stream[Shrinkable[T]] {
		return s.Shrinks().Concat(func() stream.Stream[Shrinkable[T]] { return g(s) })
	})
}

// AndThen replaces the shrink stream at every leaf of s's tree (where
// shrinking is otherwise exhausted) with g's stream, recursively. This is
// how container generators attach a second shrink pass (e.g. bulk element
// shrinking after size-shrinking bottoms out).
func AndThen[T any](s Shrinkable[T], g func(Shrinkable[T]) stream.Stream[Shrinkable[T]]) Shrinkable[T] {
	rest := s.Shrinks()
	if rest.IsEmpty() {
		return With(s.value, func() stream.Stream[Shrinkable[T]] { return g(s) })
	}
	extended := stream.Transform(rest, func(child Shrinkable[T]) Shrinkable[T] {
		return AndThen(child, g)
	})
	return With(s.value, func() stream.Stream[Shrinkable[T]] { return extended })
}

// Map lifts f through s: both the value and every node of the shrink tree
// are transformed, preserving the tree's shape (spec.md §4.2).
func Map[T, U any](s Shrinkable[T], f func(T) U) Shrinkable[U] {
	return With(f(s.value), func() stream.Stream[Shrinkable[U]] {
		return stream.Transform(s.Shrinks(), func(child Shrinkable[T]) Shrinkable[U] {
			return Map(child, f)
		})
	})
}

// FlatMap replaces the value with f(v).value and layers two shrink
// strategies: first the shrinks of T (each re-applied through f), then,
// once those are exhausted, the shrinks of f(v) at the leaves, where v is
// that leaf's own T value.
func FlatMap[T, U any](s Shrinkable[T], f func(T) Shrinkable[U]) Shrinkable[U] {
	children := s.Shrinks()
	if children.IsEmpty() {
		return f(s.value)
	}
	return With(f(s.value).value, func() stream.Stream[Shrinkable[U]] {
		return stream.Transform(children, func(child Shrinkable[T]) Shrinkable[U] {
			return FlatMap(child, f)
		})
	})
}

// joinShrinkable collapses a Shrinkable of Shrinkables into a flat
// Shrinkable, keeping the outer tree's shape (each node's value becomes
// its inner Shrinkable's value, and the outer shrinks are joined
// recursively).
func joinShrinkable[U any](s Shrinkable[Shrinkable[U]]) Shrinkable[U] {
	inner := s.value
	return With(inner.value, func() stream.Stream[Shrinkable[U]] {
		return stream.Transform(s.Shrinks(), func(child Shrinkable[Shrinkable[U]]) Shrinkable[U] {
			return joinShrinkable(child)
		})
	})
}

// Filter prunes the shrink tree to candidates satisfying p. If tolerance
// consecutive rejected candidates are encountered along one path, that
// sub-tree is cut. Callers must only invoke Filter along a tree whose root
// already satisfies p (spec.md §4.2); that invariant is established by the
// gen.Filter combinator, not re-checked here.
func Filter[T any](s Shrinkable[T], p func(T) bool, tolerance int) Shrinkable[T] {
	return With(s.value, func() stream.Stream[Shrinkable[T]] {
		return filterStream(s.Shrinks(), p, tolerance)
	})
}

func filterStream[T any](s stream.Stream[Shrinkable[T]], p func(T) bool, tolerance int) stream.Stream[Shrinkable[T]] {
	rejected := 0
	cur := s
	for {
		if cur.IsEmpty() {
			return stream.Empty[Shrinkable[T]]()
		}
		head := cur.Head()
		if p(head.Value()) {
			filteredHead := Filter(head, p, tolerance)
			tail := cur.Tail()
			return stream.Cons(filteredHead, func() stream.Stream[Shrinkable[T]] {
				return filterStream(tail, p, tolerance)
			})
		}
		rejected++
		if rejected >= tolerance {
			return stream.Empty[Shrinkable[T]]()
		}
		cur = cur.Tail()
	}
}
