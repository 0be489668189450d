// Package stream implements a persistent, possibly-infinite lazy sequence,
// the backbone Shrinkable's shrink trees are built from (spec.md §3, §4.1).
//
// A Stream is single-threaded-lazy: nothing here synchronizes concurrent
// consumption of the same Stream value. Concurrent consumers must
// externally serialize, per spec.md §4.1.
package stream

// Stream is either empty or a head element plus a thunk producing the
// tail. The zero value is the empty stream.
type Stream[T any] struct {
	nonEmpty bool
	head     T
	tail     func() Stream[T]
}

// Empty returns the empty stream.
func Empty[T any]() Stream[T] {
	return Stream[T]{}
}

// One returns a single-element stream.
func One[T any](v T) Stream[T] {
	return Cons(v, func() Stream[T] { return Empty[T]() })
}

// Cons builds a stream from a head value and a thunk for the tail. The
// thunk is expected to be idempotent: repeated evaluation must return an
// equivalent logical stream (memoization is permitted but not required).
func Cons[T any](head T, tail func() Stream[T]) Stream[T] {
	return Stream[T]{nonEmpty: true, head: head, tail: tail}
}

// IsEmpty reports whether the stream has no elements.
func (s Stream[T]) IsEmpty() bool { return !s.nonEmpty }

// Head returns the first element. Calling Head on an empty stream is a
// programming error (spec.md §4.1) and panics.
func (s Stream[T]) Head() T {
	if !s.nonEmpty {
		panic("stream: Head of empty stream")
	}
	return s.head
}

// Tail returns the stream following the head, forcing the tail thunk.
// Calling Tail on an empty stream panics.
func (s Stream[T]) Tail() Stream[T] {
	if !s.nonEmpty {
		panic("stream: Tail of empty stream")
	}
	return s.tail()
}

// Concat appends the elements of other (evaluated lazily, only once s is
// exhausted) after the elements of s.
func (s Stream[T]) Concat(other func() Stream[T]) Stream[T] {
	if s.IsEmpty() {
		return other()
	}
	head, tail := s.head, s.tail
	return Cons(head, func() Stream[T] {
		return tail().Concat(other)
	})
}

// Take caps the stream to at most n elements.
func (s Stream[T]) Take(n int) Stream[T] {
	if n <= 0 || s.IsEmpty() {
		return Empty[T]()
	}
	head, tail := s.head, s.tail
	return Cons(head, func() Stream[T] {
		return tail().Take(n - 1)
	})
}

// Iterator returns a single-shot, non-restartable cursor over s.
func (s Stream[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{cur: s}
}

// Iterator is a single-shot cursor produced by Stream.Iterator.
type Iterator[T any] struct {
	cur Stream[T]
}

// HasNext reports whether another element is available.
func (it *Iterator[T]) HasNext() bool { return !it.cur.IsEmpty() }

// Next returns the next element and advances the cursor. Panics if
// HasNext() is false.
func (it *Iterator[T]) Next() T {
	v := it.cur.Head()
	it.cur = it.cur.Tail()
	return v
}

// Transform maps f over s, lazily and in O(1) per element.
func Transform[T, U any](s Stream[T], f func(T) U) Stream[U] {
	if s.IsEmpty() {
		return Empty[U]()
	}
	head, tail := s.head, s.tail
	return Cons(f(head), func() Stream[U] {
		return Transform(tail(), f)
	})
}

// Filter evaluates the source, skipping elements until p holds, lazily.
func Filter[T any](s Stream[T], p func(T) bool) Stream[T] {
	cur := s
	for !cur.IsEmpty() && !p(cur.head) {
		cur = cur.tail()
	}
	if cur.IsEmpty() {
		return Empty[T]()
	}
	head, tail := cur.head, cur.tail
	return Cons(head, func() Stream[T] {
		return Filter(tail(), p)
	})
}

// FromSlice builds a lazy stream that yields wrap(xs[i]) for each index in
// order, without materializing wrap(xs[i]) until that element is forced.
func FromSlice[T, U any](xs []T, wrap func(T) U) Stream[U] {
	return fromSliceAt(xs, 0, wrap)
}

func fromSliceAt[T, U any](xs []T, i int, wrap func(T) U) Stream[U] {
	if i >= len(xs) {
		return Empty[U]()
	}
	return Cons(wrap(xs[i]), func() Stream[U] {
		return fromSliceAt(xs, i+1, wrap)
	})
}
