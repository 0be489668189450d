package gen

import (
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/internal/stream"
	"github.com/lucaskalb/proptest/shrink"
)

// Tuple2 holds a heterogeneous pair, generated and shrunk coordinate-wise:
// the shrink tree first offers shrinks of First with Second held fixed,
// then shrinks of Second with First held fixed, never both at once.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

// Tuple2Of combines two generators into one over Tuple2.
func Tuple2Of[A, B any](ga Generator[A], gb Generator[B]) Generator[Tuple2[A, B]] {
	return Func[Tuple2[A, B]](func(r *random.Random) shrink.Shrinkable[Tuple2[A, B]] {
		a := ga.Generate(r)
		b := gb.Generate(r)
		return pairShrinkable(a, b)
	})
}

func pairShrinkable[A, B any](a shrink.Shrinkable[A], b shrink.Shrinkable[B]) shrink.Shrinkable[Tuple2[A, B]] {
	pair := Tuple2[A, B]{First: a.Value(), Second: b.Value()}
	return shrink.With(pair, func() stream.Stream[shrink.Shrinkable[Tuple2[A, B]]] {
		aShrinks := stream.Transform(a.Shrinks(), func(na shrink.Shrinkable[A]) shrink.Shrinkable[Tuple2[A, B]] {
			return pairShrinkable(na, b)
		})
		bShrinks := func() stream.Stream[shrink.Shrinkable[Tuple2[A, B]]] {
			return stream.Transform(b.Shrinks(), func(nb shrink.Shrinkable[B]) shrink.Shrinkable[Tuple2[A, B]] {
				return pairShrinkable(a, nb)
			})
		}
		return aShrinks.Concat(bShrinks)
	})
}

// Tuple3 holds a heterogeneous triple, shrunk coordinate-wise left to right.
type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Tuple3Of combines three generators into one over Tuple3.
func Tuple3Of[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Tuple3[A, B, C]] {
	return Func[Tuple3[A, B, C]](func(r *random.Random) shrink.Shrinkable[Tuple3[A, B, C]] {
		a := ga.Generate(r)
		b := gb.Generate(r)
		c := gc.Generate(r)
		return tripleShrinkable(a, b, c)
	})
}

func tripleShrinkable[A, B, C any](a shrink.Shrinkable[A], b shrink.Shrinkable[B], c shrink.Shrinkable[C]) shrink.Shrinkable[Tuple3[A, B, C]] {
	val := Tuple3[A, B, C]{First: a.Value(), Second: b.Value(), Third: c.Value()}
	return shrink.With(val, func() stream.Stream[shrink.Shrinkable[Tuple3[A, B, C]]] {
		aShrinks := stream.Transform(a.Shrinks(), func(na shrink.Shrinkable[A]) shrink.Shrinkable[Tuple3[A, B, C]] {
			return tripleShrinkable(na, b, c)
		})
		bShrinks := func() stream.Stream[shrink.Shrinkable[Tuple3[A, B, C]]] {
			return stream.Transform(b.Shrinks(), func(nb shrink.Shrinkable[B]) shrink.Shrinkable[Tuple3[A, B, C]] {
				return tripleShrinkable(a, nb, c)
			})
		}
		cShrinks := func() stream.Stream[shrink.Shrinkable[Tuple3[A, B, C]]] {
			return stream.Transform(c.Shrinks(), func(nc shrink.Shrinkable[C]) shrink.Shrinkable[Tuple3[A, B, C]] {
				return tripleShrinkable(a, b, nc)
			})
		}
		return aShrinks.Concat(bShrinks).Concat(cShrinks)
	})
}

// Tuple4 holds a heterogeneous quadruple, shrunk coordinate-wise left to
// right.
type Tuple4[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Tuple4Of combines four generators into one over Tuple4.
func Tuple4Of[A, B, C, D any](ga Generator[A], gb Generator[B], gc Generator[C], gd Generator[D]) Generator[Tuple4[A, B, C, D]] {
	return Func[Tuple4[A, B, C, D]](func(r *random.Random) shrink.Shrinkable[Tuple4[A, B, C, D]] {
		a := ga.Generate(r)
		b := gb.Generate(r)
		c := gc.Generate(r)
		d := gd.Generate(r)
		return quadShrinkable(a, b, c, d)
	})
}

func quadShrinkable[A, B, C, D any](a shrink.Shrinkable[A], b shrink.Shrinkable[B], c shrink.Shrinkable[C], d shrink.Shrinkable[D]) shrink.Shrinkable[Tuple4[A, B, C, D]] {
	val := Tuple4[A, B, C, D]{First: a.Value(), Second: b.Value(), Third: c.Value(), Fourth: d.Value()}
	return shrink.With(val, func() stream.Stream[shrink.Shrinkable[Tuple4[A, B, C, D]]] {
		aShrinks := stream.Transform(a.Shrinks(), func(na shrink.Shrinkable[A]) shrink.Shrinkable[Tuple4[A, B, C, D]] {
			return quadShrinkable(na, b, c, d)
		})
		bShrinks := func() stream.Stream[shrink.Shrinkable[Tuple4[A, B, C, D]]] {
			return stream.Transform(b.Shrinks(), func(nb shrink.Shrinkable[B]) shrink.Shrinkable[Tuple4[A, B, C, D]] {
				return quadShrinkable(a, nb, c, d)
			})
		}
		cShrinks := func() stream.Stream[shrink.Shrinkable[Tuple4[A, B, C, D]]] {
			return stream.Transform(c.Shrinks(), func(nc shrink.Shrinkable[C]) shrink.Shrinkable[Tuple4[A, B, C, D]] {
				return quadShrinkable(a, b, nc, d)
			})
		}
		dShrinks := func() stream.Stream[shrink.Shrinkable[Tuple4[A, B, C, D]]] {
			return stream.Transform(d.Shrinks(), func(nd shrink.Shrinkable[D]) shrink.Shrinkable[Tuple4[A, B, C, D]] {
				return quadShrinkable(a, b, c, nd)
			})
		}
		return aShrinks.Concat(bShrinks).Concat(cShrinks).Concat(dShrinks)
	})
}
