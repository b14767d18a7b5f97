// Package bitseq provides an ordered, growable sequence of bits, used to hold
// Huffman codes and Huffman-coded payloads.
package bitseq

import (
	"iter"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

const wordSize = 64

// Sequence represents an ordered sequence of bits.  The zero value is an
// empty sequence, ready to use.
//
// Sequence must not be copied by value once bits have been appended; use
// Clone instead.
type Sequence struct {
	// words holds the actual values of the bits.  The least significant
	// bit of words[0] is the first bit.  Bits at positions >= size are
	// always zero.
	words []uint64

	// size holds the number of valid bits.
	size int
}

// New is a convenience function that constructs a Sequence from the given
// bits, in order.
func New(bits ...bool) *Sequence {
	s := &Sequence{words: make([]uint64, 0, numWords(len(bits)))}
	for _, bit := range bits {
		s.AppendBit(bit)
	}
	return s
}

// Parse constructs a Sequence from a string of '0' and '1' characters.
// Spaces and underscores are ignored, so "10 110" and "10_110" both parse.
func Parse(str string) (*Sequence, error) {
	s := new(Sequence)
	for offset, ch := range str {
		switch ch {
		case '0':
			s.AppendBit(false)
		case '1':
			s.AppendBit(true)
		case ' ', '_':
			// separator
		default:
			return nil, errors.Errorf("bitseq: invalid bit %q at offset %d", ch, offset)
		}
	}
	return s, nil
}

// MustParse is like Parse, but panics if str is not a valid bit string.
func MustParse(str string) *Sequence {
	s, err := Parse(str)
	assert.Assertf(err == nil, "%v", err)
	return s
}

// Len returns the number of bits in the sequence.
func (s *Sequence) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// At returns the i'th bit.  It panics if i is out of range.
func (s *Sequence) At(i int) bool {
	assert.Assertf(i >= 0 && i < s.Len(), "bitseq: index %d out of range [0, %d)", i, s.Len())
	return (s.words[i/wordSize]>>uint(i%wordSize))&1 == 1
}

// AppendBit appends a single bit to the end of the sequence.
func (s *Sequence) AppendBit(bit bool) {
	index, offset := s.size/wordSize, uint(s.size%wordSize)
	if offset == 0 {
		s.words = append(s.words, 0)
	}
	if bit {
		s.words[index] |= 1 << offset
	}
	s.size++
}

// Append appends all bits of other to the end of the sequence.  Appending a
// nil or empty sequence is a no-op.
func (s *Sequence) Append(other *Sequence) {
	if other.Len() == 0 {
		return
	}
	if other == s {
		other = s.Clone()
	}

	src := other.words[:numWords(other.size)]
	shift := uint(s.size % wordSize)
	if shift == 0 {
		s.words = append(s.words[:numWords(s.size)], src...)
		s.size += other.size
		return
	}

	// Each source word straddles two destination words: its low bits
	// fill the partial last word, its high bits start a new one.
	for _, w := range src {
		s.words[len(s.words)-1] |= w << shift
		s.words = append(s.words, w>>(wordSize-shift))
	}
	s.size += other.size
	s.words = s.words[:numWords(s.size)]
}

// Slice returns a new Sequence holding bits [from, to).
func (s *Sequence) Slice(from, to int) *Sequence {
	assert.Assertf(from >= 0 && from <= to && to <= s.Len(), "bitseq: slice [%d:%d] out of range [0, %d]", from, to, s.Len())
	out := &Sequence{words: make([]uint64, 0, numWords(to-from))}
	for i := from; i < to; i++ {
		out.AppendBit(s.At(i))
	}
	return out
}

// Clone returns a deep copy of the sequence.  Cloning nil yields an empty
// sequence.
func (s *Sequence) Clone() *Sequence {
	if s == nil {
		return new(Sequence)
	}
	words := make([]uint64, numWords(s.size))
	copy(words, s.words)
	return &Sequence{words: words, size: s.size}
}

// Equal returns true iff both sequences hold the same bits.  A nil sequence
// is equal to an empty one.
func (s *Sequence) Equal(other *Sequence) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i, n := 0, numWords(s.Len()); i < n; i++ {
		if s.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Bits returns an iterator over the bits of the sequence, first to last.
func (s *Sequence) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i, n := 0, s.Len(); i < n; i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// String returns the bits as a string of '0' and '1' characters, first bit
// first.
func (s *Sequence) String() string {
	var buf strings.Builder
	buf.Grow(s.Len())
	for bit := range s.Bits() {
		if bit {
			buf.WriteByte('1')
		} else {
			buf.WriteByte('0')
		}
	}
	return buf.String()
}

func numWords(size int) int {
	return (size + wordSize - 1) / wordSize
}
