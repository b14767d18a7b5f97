package huffman

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffbook/bitseq"
)

// MaxCodeLength is the longest code length accepted by NewCanonicalCodeBook.
const MaxCodeLength = 32

// NewCanonicalCodeBook constructs the CodeBook for the canonical Huffman code
// with the given code length for each character, per the algorithm in RFC
// 1951 Section 3.2.2.  Characters with a length of 0 are omitted.
//
// The lengths must describe a complete prefix code, otherwise an error
// wrapping ErrDegenerateCode is returned.  The degenerate codes with 0
// characters, or with 1 character of length 1, are permitted, as no complete
// code exists for them.
//
func NewCanonicalCodeBook(lengths map[rune]int, opts ...Option) (*CodeBook, error) {
	sorted := make(byLength, 0, len(lengths))
	for c, size := range lengths {
		if size == 0 {
			continue
		}
		if size < 0 || size > MaxCodeLength {
			return nil, errors.Errorf("huffman: invalid code length for %q: got %d, max %d", c, size, MaxCodeLength)
		}
		sorted = append(sorted, charAndLength{c, size})
	}

	cb := NewCodeBook(opts...)
	if len(sorted) == 0 {
		return cb, nil
	}
	sorted.Sort()

	// Every code of length n uses up 2^(maxSize-n) of the 2^maxSize
	// possible leaves; a complete code uses up all of them.

	maxSize := sorted[len(sorted)-1].size
	var used uint64
	for _, item := range sorted {
		used += uint64(1) << uint(maxSize-item.size)
	}
	if len(sorted) == 1 && maxSize == 1 {
		// pass
	} else if used != uint64(1)<<uint(maxSize) {
		return nil, errors.Wrapf(ErrDegenerateCode, "expected %d, got %d", uint64(1)<<uint(maxSize), used)
	}

	// Assign the codes sequentially, per the algorithm detailed at
	// <https://en.wikipedia.org/w/index.php?title=Canonical_Huffman_code&oldid=999983137>.

	lastSize := sorted[0].size
	var nextCode uint64
	for _, item := range sorted {
		if item.size > lastSize {
			nextCode <<= uint(item.size - lastSize)
			lastSize = item.size
		}
		cb.AddSequence(item.char, codeSequence(item.size, nextCode))
		nextCode++
	}
	return cb, nil
}

// Lengths returns the code length of every character in the CodeBook.  For a
// canonical code, passing the result to NewCanonicalCodeBook reproduces the
// CodeBook.
func (cb *CodeBook) Lengths() map[rune]int {
	out := make(map[rune]int, cb.size)
	cb.walk(func(e *entry) bool {
		out[e.char] = e.seq.Len()
		return true
	})
	return out
}

// codeSequence returns the low size bits of code, most significant bit
// first.
func codeSequence(size int, code uint64) *bitseq.Sequence {
	seq := new(bitseq.Sequence)
	for i := size - 1; i >= 0; i-- {
		seq.AppendBit((code>>uint(i))&1 == 1)
	}
	return seq
}

// type charAndLength + type byLength {{{

type charAndLength struct {
	char rune
	size int
}

type byLength []charAndLength

func (list byLength) Len() int {
	return len(list)
}

func (list byLength) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byLength) Less(i, j int) bool {
	a, b := list[i], list[j]
	if a.size != b.size {
		return a.size < b.size
	}
	return a.char < b.char
}

func (list byLength) Sort() {
	sort.Sort(list)
}

var _ sort.Interface = byLength(nil)

// }}}
