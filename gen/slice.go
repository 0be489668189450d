package gen

import (
	"github.com/lucaskalb/proptest/internal/random"
	"github.com/lucaskalb/proptest/internal/stream"
	"github.com/lucaskalb/proptest/shrink"
)

// elemSlice is the intermediate representation used while shrinking a
// container generator: each element keeps its own Shrinkable so bulk
// element shrinking (spec.md §4.3) can advance one step down each
// element's own shrink stream.
type elemSlice[T any] []shrink.Shrinkable[T]

func (v elemSlice[T]) values() []T {
	out := make([]T, len(v))
	for i, s := range v {
		out[i] = s.Value()
	}
	return out
}

// SliceOf generates a []T with length in [size.Min, size.Max], drawing
// elements from elem. Shrinking proceeds in two phases (spec.md §4.3):
// first the length is shrunk toward size.Min (binary search, keeping a
// prefix of the generated elements at each smaller length), then, once
// size-shrinking stabilizes, elements are shrunk in bulk: the sequence is
// partitioned into 2^p contiguous groups and every element in a group is
// advanced one shrink step simultaneously, p increasing from 0 (whole
// sequence) for coarse-then-fine refinement.
func SliceOf[T any](elem Generator[T], size Size) Generator[[]T] {
	lo, hi := size.Min, size.Max
	if hi < lo {
		hi = lo
	}
	return Func[[]T](func(r *random.Random) shrink.Shrinkable[[]T] {
		n := lo
		if hi > lo {
			n = r.Size(lo, hi+1)
		}
		elems := make(elemSlice[T], n)
		for i := range elems {
			elems[i] = elem.Generate(r)
		}

		sizeShrunk := shrink.Map(shrink.IntRange(int64(n-lo), 0, int64(n-lo)), func(d int64) elemSlice[T] {
			newLen := lo + int(d)
			if newLen <= 0 {
				return elemSlice[T]{}
			}
			out := make(elemSlice[T], newLen)
			copy(out, elems[:newLen])
			return out
		})

		withBulk := shrink.AndThen(sizeShrunk, func(leaf shrink.Shrinkable[elemSlice[T]]) stream.Stream[shrink.Shrinkable[elemSlice[T]]] {
			return bulkShrink(leaf, 0)
		})

		return shrink.Map(withBulk, func(es elemSlice[T]) []T { return es.values() })
	})
}

// bulkShrink shrinks the elements of ancestor in groups of size
// len(ancestor)/2^power, advancing every element in a group one shrink
// step simultaneously. power increases (finer partitions) as coarser
// passes stop producing anything new.
func bulkShrink[T any](ancestor shrink.Shrinkable[elemSlice[T]], power int) stream.Stream[shrink.Shrinkable[elemSlice[T]]] {
	n := len(ancestor.Value())
	numSplits := 1 << power
	if n/numSplits < 1 {
		return stream.Empty[shrink.Shrinkable[elemSlice[T]]]()
	}
	var groups stream.Stream[shrink.Shrinkable[elemSlice[T]]]
	for offset := 0; offset < numSplits; offset++ {
		off := offset
		groups = groups.Concat(func() stream.Stream[shrink.Shrinkable[elemSlice[T]]] {
			return groupShrinkChain(ancestor, power, off)
		})
	}
	// Finer partition, tried after every group at this power is
	// exhausted, so coarse shrinks are preferred.
	finer := func() stream.Stream[shrink.Shrinkable[elemSlice[T]]] {
		if numSplits*2 > n {
			return stream.Empty[shrink.Shrinkable[elemSlice[T]]]()
		}
		return bulkShrink(ancestor, power+1)
	}
	return groups.Concat(finer)
}

// groupShrinkChain repeatedly advances every element's shrink stream
// within one group [frompos, topos) simultaneously, substituting into a
// copy of ancestor, until no element in the group has anything left.
func groupShrinkChain[T any](ancestor shrink.Shrinkable[elemSlice[T]], power, offset int) stream.Stream[shrink.Shrinkable[elemSlice[T]]] {
	n := len(ancestor.Value())
	numSplits := 1 << power
	frompos := n * offset / numSplits
	topos := n * (offset + 1) / numSplits
	if topos <= frompos {
		return stream.Empty[shrink.Shrinkable[elemSlice[T]]]()
	}
	group := make([]shrink.Shrinkable[T], topos-frompos)
	copy(group, ancestor.Value()[frompos:topos])
	return groupStep(ancestor.Value(), frompos, topos, group)
}

func groupStep[T any](parent elemSlice[T], frompos, topos int, group []shrink.Shrinkable[T]) stream.Stream[shrink.Shrinkable[elemSlice[T]]] {
	nextGroup := make([]shrink.Shrinkable[T], len(group))
	newVec := make(elemSlice[T], len(parent))
	copy(newVec, parent)
	progressed := false
	for i, g := range group {
		it := g.Shrinks().Iterator()
		if it.HasNext() {
			nextGroup[i] = it.Next()
			newVec[frompos+i] = nextGroup[i]
			progressed = true
		} else {
			nextGroup[i] = g
			newVec[frompos+i] = g
		}
	}
	if !progressed {
		return stream.Empty[shrink.Shrinkable[elemSlice[T]]]()
	}
	node := shrink.Of(newVec)
	return stream.Cons(node, func() stream.Stream[shrink.Shrinkable[elemSlice[T]]] {
		return groupStep(newVec, frompos, topos, nextGroup)
	})
}
