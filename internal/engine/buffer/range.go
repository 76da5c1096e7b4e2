package buffer

import "fmt"

// ByteOffset represents a byte position in the buffer content.
type ByteOffset = int

// Range represents a byte range in the buffer.
// Start is inclusive, End is exclusive: [Start, End).
type Range struct {
	Start ByteOffset // Inclusive start position
	End   ByteOffset // Exclusive end position
}

// NewRange creates a new Range from start and end offsets.
func NewRange(start, end ByteOffset) Range {
	return Range{Start: start, End: end}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%d:%d)", r.Start, r.End)
}

// Len returns the length of the range in bytes.
func (r Range) Len() ByteOffset {
	return r.End - r.Start
}

// IsEmpty returns true if the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// IsValid returns true if the range is valid (Start <= End).
func (r Range) IsValid() bool {
	return r.Start <= r.End
}

// Contains returns true if the given offset is within the range.
func (r Range) Contains(offset ByteOffset) bool {
	return offset >= r.Start && offset < r.End
}

// Clamp returns the range constrained to [0, max].
func (r Range) Clamp(max ByteOffset) Range {
	c := r
	if c.Start < 0 {
		c.Start = 0
	}
	if c.Start > max {
		c.Start = max
	}
	if c.End < c.Start {
		c.End = c.Start
	}
	if c.End > max {
		c.End = max
	}
	return c
}
