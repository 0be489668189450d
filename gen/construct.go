package gen

import (
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/shrink"
)

// Construct2 draws one value from each of ga, gb and builds a T with build,
// shrinking the two arguments coordinate-wise and rebuilding T at every
// step. Useful for generating structs whose fields aren't independently
// exported, or whose invariants a caller wants enforced at construction.
func Construct2[A, B, T any](ga Generator[A], gb Generator[B], build func(A, B) T) Generator[T] {
	pair := Tuple2Of(ga, gb)
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		return shrink.Map(pair.Generate(r), func(p Tuple2[A, B]) T { return build(p.First, p.Second) })
	})
}

// Construct3 is Construct2 for three arguments.
func Construct3[A, B, C, T any](ga Generator[A], gb Generator[B], gc Generator[C], build func(A, B, C) T) Generator[T] {
	triple := Tuple3Of(ga, gb, gc)
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		return shrink.Map(triple.Generate(r), func(p Tuple3[A, B, C]) T { return build(p.First, p.Second, p.Third) })
	})
}

// Construct4 is Construct2 for four arguments.
func Construct4[A, B, C, D, T any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D], build func(A, B, C, D) T) Generator[T] {
	quad := Tuple4Of(ga, gb, gc, gd)
	return Func[T](func(r *random.Random) shrink.Shrinkable[T] {
		return shrink.Map(quad.Generate(r), func(p Tuple4[A, B, C, D]) T { return build(p.First, p.Second, p.Third, p.Fourth) })
	})
}
