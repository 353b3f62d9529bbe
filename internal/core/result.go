package core

// Result reports whether a mutating operation took effect. Invalid actions
// (full pool, occupied cell, move past an edge) are Rejected and leave state
// untouched; they are never errors.
type Result uint8

const (
	Accepted Result = iota
	Rejected
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	if r == Accepted {
		return "Accepted"
	}
	return "Rejected"
}
