package bitseq

import (
	"github.com/chronos-tachyon/assert"
)

// Iterator is a forward cursor over the bits of a Sequence.
type Iterator struct {
	seq *Sequence
	pos int
}

// Iterator returns a new Iterator positioned at the first bit.
func (s *Sequence) Iterator() *Iterator {
	return &Iterator{seq: s}
}

// HasNext returns true iff at least one bit remains.
func (it *Iterator) HasNext() bool {
	return it.pos < it.seq.Len()
}

// Next consumes and returns the next bit.  It panics if no bits remain.
func (it *Iterator) Next() bool {
	assert.Assertf(it.HasNext(), "bitseq: Next called at end of sequence (len %d)", it.seq.Len())
	bit := it.seq.At(it.pos)
	it.pos++
	return bit
}

// Pos returns the number of bits consumed so far.
func (it *Iterator) Pos() int {
	return it.pos
}
