package expand

// span is one interval still awaiting bisection
type span struct {
	lo, hi int64
}

// Bisect returns a permutation of every integer between from and to
// inclusive, ordered coarse to fine: the two endpoints first, then the
// midpoint of every remaining interval, level by level. Consuming the
// result incrementally therefore gives maximal coverage of the range at
// every prefix, which is what progressive preview renders want.
//
// A descending pair runs on the swapped bounds and the result is reversed
// wholesale before returning, so the written endpoints are the final two
// elements of a descending expansion rather than the first.
func Bisect(from, to int64) []int64 {
	switch {
	case from == to:
		return []int64{from}
	case from < to:
		return bisect(from, to)
	default:
		out := bisect(to, from)
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out
	}
}

// bisect emits the breadth-first bisection order for an ascending pair.
// Popping spans in FIFO order gives the level-by-level, left-to-right
// emission order; each integer in (lo, hi) is emitted exactly once as the
// midpoint of the span that contains it.
func bisect(lo, hi int64) []int64 {
	result := make([]int64, 0, allocHint(dist(lo, hi)+1))
	result = append(result, lo, hi)

	queue := []span{{lo, hi}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]

		// Midpoint with floor semantics; the unsigned halving stays exact
		// even when the span covers more than half the integer range.
		mid := s.lo + int64(dist(s.lo, s.hi)/2)
		if s.lo < mid {
			result = append(result, mid)
			queue = append(queue, span{s.lo, mid}, span{mid, s.hi})
		}
	}

	return result
}
