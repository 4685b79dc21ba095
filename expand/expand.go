// Package expand interprets a parsed token tree, turning every sequence
// part into concrete frame numbers.
package expand

import (
	"github.com/aledsdavies/frameseq/parser"
)

// Frames walks the token tree depth-first, expands every part left to
// right, and collapses duplicates to their first occurrence.
func Frames(seq *parser.Sequence) []int64 {
	var raw []int64
	for _, part := range seq.Parts {
		switch part := part.(type) {
		case parser.Frame:
			raw = append(raw, part.Value)
		case parser.Range:
			raw = append(raw, expandRange(part)...)
		}
	}
	return dedupe(raw)
}

// expandRange dispatches one range to its expansion strategy
func expandRange(r parser.Range) []int64 {
	if r.Step != nil {
		switch r.Step.Kind {
		case parser.StepFixed:
			return stepped(r.From, r.To, r.Step.Count)
		case parser.StepBinary:
			return Bisect(r.From, r.To)
		}
	}
	return contiguous(r.From, r.To)
}

// contiguous expands a range without step specifier: every integer between
// the bounds inclusive, running in the direction the range was written.
// The counter stops at the far bound before stepping past it, so bounds at
// the integer limits cannot wrap the loop.
func contiguous(from, to int64) []int64 {
	switch {
	case from == to:
		return []int64{from}
	case from < to:
		out := make([]int64, 0, allocHint(dist(from, to)+1))
		for v := from; ; v++ {
			out = append(out, v)
			if v == to {
				return out
			}
		}
	default:
		out := make([]int64, 0, allocHint(dist(to, from)+1))
		for v := from; ; v-- {
			out = append(out, v)
			if v == to {
				return out
			}
		}
	}
}

// stepped expands a fixed-step range. The far bound is included only when
// the stride lands on it exactly; there is no clamping. The loop stops once
// the remaining distance to the far bound is smaller than the stride, so
// the counter never steps past the integer limits.
func stepped(from, to, step int64) []int64 {
	switch {
	case from == to:
		return []int64{from}
	case from < to:
		out := make([]int64, 0, allocHint(dist(from, to)/uint64(step)+1))
		for v := from; ; v += step {
			out = append(out, v)
			if dist(v, to) < uint64(step) {
				return out
			}
		}
	default:
		out := make([]int64, 0, allocHint(dist(to, from)/uint64(step)+1))
		for v := from; ; v -= step {
			out = append(out, v)
			if dist(to, v) < uint64(step) {
				return out
			}
		}
	}
}

// dist returns hi - lo as the exact unsigned distance. Valid for any pair
// of bounds with lo <= hi, including the full integer range.
func dist(lo, hi int64) uint64 {
	return uint64(hi) - uint64(lo)
}

// allocHint clamps a range expansion's element count to a sane initial
// capacity; larger expansions grow through append. A count of zero means
// the true count wrapped past the uint64 range.
func allocHint(n uint64) int {
	const max = 1 << 16
	if n == 0 || n > max {
		return max
	}
	return int(n)
}
