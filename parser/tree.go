package parser

// Sequence is the root of the token tree: the comma-separated parts of one
// frame sequence string, in source order.
type Sequence struct {
	Parts []Part
}

// Part is one comma-separated element of a sequence: either a single Frame
// or a Range.
type Part interface {
	part()
}

// Frame is a single signed integer literal
type Frame struct {
	Value int64
}

func (Frame) part() {}

// Range is a bounded range with an optional step specifier.
// From and To are the left and right bounds as written; From may be
// greater than To, which reads as a descending range.
type Range struct {
	From int64
	To   int64
	Step *Step // nil when the range has no @ suffix
}

func (Range) part() {}

// StepKind selects the expansion strategy of a stepped range
type StepKind int

const (
	StepFixed  StepKind = iota // @N - fixed stride
	StepBinary                 // @b - binary subdivision
)

func (k StepKind) String() string {
	switch k {
	case StepFixed:
		return "fixed"
	case StepBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Step is the @ suffix of a range
type Step struct {
	Kind  StepKind
	Count int64 // stride magnitude, always > 0; unused for StepBinary
}
