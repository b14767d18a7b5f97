package huffman

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/chronos-tachyon/huffbook/bitseq"
)

// CodeBook maps characters to the bit sequences that encode them.
//
// Entries live in a binary search tree keyed by character.  The tree is
// mirrored from the usual convention: a key greater than a node's key lives
// in that node's left subtree, a smaller key in its right subtree.  This is
// visible only through the order of All, ForEach, and String.
//
// A CodeBook is built by a single goroutine.  Once built it is safe to share
// between goroutines, as long as nobody calls AddSequence again.
//
type CodeBook struct {
	root   *entry
	size   int
	logger zerolog.Logger
}

// Entry is a single (character, sequence) pair from a CodeBook.
type Entry struct {
	Char rune
	Seq  *bitseq.Sequence
}

type entry struct {
	char  rune
	seq   *bitseq.Sequence
	left  *entry
	right *entry
}

// slot returns the child link that key routes to from e.
func (e *entry) slot(key rune) **entry {
	if key > e.char {
		return &e.left
	}
	return &e.right
}

// NewCodeBook constructs an empty CodeBook.  The zero value of CodeBook is
// also an empty CodeBook, without logging.
func NewCodeBook(opts ...Option) *CodeBook {
	o := buildOptions(opts)
	return &CodeBook{logger: o.logger}
}

// AddSequence maps c to seq.  If c is already mapped, the existing sequence
// is kept and seq is discarded.  The CodeBook keeps its own copy of seq.
func (cb *CodeBook) AddSequence(c rune, seq *bitseq.Sequence) {
	slot := &cb.root
	for *slot != nil {
		e := *slot
		if e.char == c {
			cb.logger.Debug().
				Str("char", string(c)).
				Stringer("seq", seq).
				Stringer("existing", e.seq).
				Msg("ignoring duplicate code book entry")
			return
		}
		slot = e.slot(c)
	}
	*slot = &entry{char: c, seq: seq.Clone()}
	cb.size++
}

// Len returns the number of characters in the CodeBook.
func (cb *CodeBook) Len() int {
	return cb.size
}

// Contains returns true iff c has a sequence.
func (cb *CodeBook) Contains(c rune) bool {
	return cb.find(c) != nil
}

// ContainsAll returns true iff every character of text has a sequence.  It
// returns true for the empty string.
func (cb *CodeBook) ContainsAll(text string) bool {
	for _, c := range text {
		if !cb.Contains(c) {
			return false
		}
	}
	return true
}

// GetSequence returns a copy of the sequence for c.  If c has no sequence,
// it returns nil and false.
func (cb *CodeBook) GetSequence(c rune) (*bitseq.Sequence, bool) {
	e := cb.find(c)
	if e == nil {
		return nil, false
	}
	return e.seq.Clone(), true
}

// Encode returns the concatenation of the sequences for each character of
// text, in order.  If any character has no sequence, Encode returns an error
// wrapping ErrNoMapping and no output.
func (cb *CodeBook) Encode(text string) (*bitseq.Sequence, error) {
	out := new(bitseq.Sequence)
	for offset, c := range text {
		e := cb.find(c)
		if e == nil {
			cb.logger.Debug().
				Str("char", string(c)).
				Int("offset", offset).
				Msg("encode failed: character not in code book")
			return nil, errors.Wrapf(ErrNoMapping, "encode %q at byte offset %d", c, offset)
		}
		out.Append(e.seq)
	}
	return out, nil
}

// All returns an iterator over the entries of the CodeBook, in pre-order:
// each node, then its left subtree, then its right subtree.  Each yielded
// sequence is a copy.
func (cb *CodeBook) All() iter.Seq2[rune, *bitseq.Sequence] {
	return func(yield func(rune, *bitseq.Sequence) bool) {
		cb.walk(func(e *entry) bool {
			return yield(e.char, e.seq.Clone())
		})
	}
}

// ForEach calls fn once for every entry, in the same order as All.
func (cb *CodeBook) ForEach(fn func(Entry)) {
	for c, seq := range cb.All() {
		fn(Entry{Char: c, Seq: seq})
	}
}

// String returns one "c: bits" line per entry, in the same order as All.
func (cb *CodeBook) String() string {
	var buf strings.Builder
	cb.walk(func(e *entry) bool {
		fmt.Fprintf(&buf, "%c: %s\n", e.char, e.seq)
		return true
	})
	return buf.String()
}

var _ fmt.Stringer = (*CodeBook)(nil)

// Dump writes a programmer-readable debugging dump of the CodeBook's current
// state to the given writer.
func (cb *CodeBook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeBook{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", cb.size)
	cb.walk(func(e *entry) bool {
		fmt.Fprintf(&buf, "\tEncode(%q) = %q\n", e.char, e.seq.String())
		return true
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (cb *CodeBook) find(c rune) *entry {
	e := cb.root
	for e != nil && e.char != c {
		e = *e.slot(c)
	}
	return e
}

// walk visits the entries in pre-order until fn returns false.
func (cb *CodeBook) walk(fn func(*entry) bool) {
	if cb.root == nil {
		return
	}

	stack := []*entry{cb.root}
	for len(stack) != 0 {
		last := len(stack) - 1
		e := stack[last]
		stack[last] = nil
		stack = stack[:last]

		if !fn(e) {
			return
		}

		// Right first, so that left pops first.
		if e.right != nil {
			stack = append(stack, e.right)
		}
		if e.left != nil {
			stack = append(stack, e.left)
		}
	}
}
