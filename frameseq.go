// Package frameseq parses frame sequence strings into explicit lists of
// frame numbers, as used by rendering and animation pipelines.
//
// Individual frames:
//
//	1,2,3,5,8,13  ->  [1 2 3 5 8 13]
//
// A range:
//
//	10-15  ->  [10 11 12 13 14 15]
//
// With a step size (always positive; write the range in reverse to run
// backwards):
//
//	10-20@2  ->  [10 12 14 16 18 20]
//	42-33@3  ->  [42 39 36 33]
//
// With binary subdivision, for coarse-to-fine preview ordering:
//
//	10-20@b  ->  [10 20 15 12 17 11 13 16 18 14 19]
//
// The far end of a stepped range is omitted when the step size does not
// land on it exactly:
//
//	80-70@4  ->  [80 76 72]
//
// The result never contains a frame twice; later occurrences collapse into
// the first.
package frameseq

import (
	"fmt"

	"github.com/aledsdavies/frameseq/expand"
	"github.com/aledsdavies/frameseq/parser"
)

// Parse expands a frame sequence string into frame numbers, in notation
// order with duplicates removed.
//
// On failure the returned error is a *parser.ParseError carrying the
// offending position and the set of tokens expected there. A malformed
// input never yields a partial result.
func Parse(input string) ([]int64, error) {
	seq, err := parser.Parse(input)
	if err != nil {
		return nil, err
	}
	return expand.Frames(seq), nil
}

// MustParse is like Parse but panics on malformed input. It simplifies
// initialization of package-level sequences known to be valid.
func MustParse(input string) []int64 {
	frames, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("frameseq: MustParse(%q): %v", input, err))
	}
	return frames
}
