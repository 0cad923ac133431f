package differ

import "fmt"

// OpTag identifies the type of edit operation
type OpTag int

const (
	// OpEqual means the token ranges are identical
	OpEqual OpTag = iota
	// OpInsert means tokens were added to the comparison sequence
	OpInsert
	// OpDelete means tokens were removed from the source sequence
	OpDelete
	// OpReplace means a source range was replaced by a comparison range
	OpReplace
)

// String returns a string representation of the OpTag
func (t OpTag) String() string {
	switch t {
	case OpEqual:
		return "equal"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// EditOp describes the relationship between the source range [I1,I2) and
// the comparison range [J1,J2). A full edit script is a total partition of
// both sequences: ranges are contiguous across operations and together span
// both inputs end to end.
type EditOp struct {
	Tag OpTag
	I1  int
	I2  int
	J1  int
	J2  int
}

// String returns a compact representation useful in test failures
func (op EditOp) String() string {
	return fmt.Sprintf("%s a[%d:%d] b[%d:%d]", op.Tag, op.I1, op.I2, op.J1, op.J2)
}

// SourceLen returns the number of source tokens the operation covers
func (op EditOp) SourceLen() int {
	return op.I2 - op.I1
}

// ComparisonLen returns the number of comparison tokens the operation covers
func (op EditOp) ComparisonLen() int {
	return op.J2 - op.J1
}
