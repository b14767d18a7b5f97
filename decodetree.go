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

// DecodeTree is a binary trie that maps bit sequences to characters.  Each
// code is the path from the root to a Leaf, taking the zero-child on a 0 bit
// and the one-child on a 1 bit.
//
// Like CodeBook, a DecodeTree is built by a single goroutine and is safe to
// share once nobody calls Put again.
//
type DecodeTree struct {
	root   Node
	logger zerolog.Logger
}

// NewDecodeTree constructs a DecodeTree with the given root, which may be nil.
func NewDecodeTree(root Node, opts ...Option) *DecodeTree {
	o := buildOptions(opts)
	if isAbsent(root) {
		root = nil
	}
	return &DecodeTree{root: root, logger: o.logger}
}

// NewDecodeTreeFromCodeBook constructs a DecodeTree by calling Put for every
// entry of cb, in the order of cb.All.
func NewDecodeTreeFromCodeBook(cb *CodeBook, opts ...Option) *DecodeTree {
	t := NewDecodeTree(nil, opts...)
	cb.walk(func(e *entry) bool {
		t.Put(e.seq, e.char)
		return true
	})
	return t
}

// Root returns the root node, or nil for an empty tree.
func (t *DecodeTree) Root() Node {
	return t.root
}

// Put makes seq decode to c.  Missing nodes along the path are created as
// branches.  Whatever already sits at the end of the path, leaf or whole
// subtree, is replaced by a new leaf.  A leaf found part way along the path
// is replaced by a branch, and its character is lost.
//
// Put never fails: a code book that is not prefix-free yields a tree in
// which later entries have overwritten earlier ones.  Use Validate to check
// the result.
//
func (t *DecodeTree) Put(seq *bitseq.Sequence, c rune) {
	slot := &t.root
	it := seq.Iterator()
	for it.HasNext() {
		depth := it.Pos()
		bit := it.Next()

		b, ok := (*slot).(*Branch)
		if !ok || b == nil {
			if leaf, isLeaf := (*slot).(*Leaf); isLeaf && leaf != nil {
				t.logger.Debug().
					Str("char", string(c)).
					Stringer("seq", seq).
					Str("displaced", string(leaf.Char)).
					Int("depth", depth).
					Msg("code passes through an existing leaf; replacing it with a branch")
			}
			b = new(Branch)
			*slot = b
		}
		slot = &b.child[bitIndex(bit)]
	}

	if !isAbsent(*slot) {
		t.logger.Debug().
			Str("char", string(c)).
			Stringer("seq", seq).
			Bool("leaf", (*slot).IsLeaf()).
			Msg("code overwrites an existing node")
	}
	*slot = NewLeaf(c)
}

// IsValid returns true iff the tree is non-empty and every branch has both
// children.  An empty tree is not valid.
func (t *DecodeTree) IsValid() bool {
	return t.root != nil && t.root.IsValidTree()
}

// Validate is like IsValid, but describes the problem.  It returns
// ErrEmptyTree for an empty tree, an error wrapping ErrInvalidShape naming
// the path of the first incomplete branch, or nil.
func (t *DecodeTree) Validate() error {
	if t.root == nil {
		return ErrEmptyTree
	}
	if path := findInvalid(t.root); path != nil {
		return errors.Wrapf(ErrInvalidShape, "branch at path %q", path.String())
	}
	return nil
}

// Decode walks the tree once per code in seq and returns the characters
// found, in order.
//
// Decode does not require the tree to be valid.  It fails with:
//
//   - ErrEmptyTree, if the tree has no root;
//   - ErrUnknownCode, if seq follows a missing child (this includes any
//     input to a tree whose root is a leaf);
//   - ErrTruncated, if seq ends part way down a path.
//
// On failure, the characters decoded before the failing code are returned
// along with the error.
//
func (t *DecodeTree) Decode(seq *bitseq.Sequence) (string, error) {
	if t.root == nil {
		return "", ErrEmptyTree
	}

	var out strings.Builder
	node := t.root
	start := 0
	it := seq.Iterator()
	for it.HasNext() {
		bit := it.Next()

		var next Node
		if b, ok := node.(*Branch); ok {
			next = b.child[bitIndex(bit)]
		}
		if isAbsent(next) {
			code := seq.Slice(start, it.Pos())
			t.logger.Debug().
				Stringer("code", code).
				Int("offset", start).
				Msg("decode failed: unknown code")
			return out.String(), errors.Wrapf(ErrUnknownCode, "code %q at bit offset %d", code.String(), start)
		}

		if leaf, ok := next.(*Leaf); ok {
			out.WriteRune(leaf.Char)
			node = t.root
			start = it.Pos()
			continue
		}
		node = next
	}

	if start != it.Pos() {
		code := seq.Slice(start, it.Pos())
		t.logger.Debug().
			Stringer("code", code).
			Int("offset", start).
			Msg("decode failed: input truncated")
		return out.String(), errors.Wrapf(ErrTruncated, "partial code %q at bit offset %d", code.String(), start)
	}
	return out.String(), nil
}

// All returns an iterator over every (code, character) pair held by the
// tree, in depth-first order with 0 before 1.
func (t *DecodeTree) All() iter.Seq2[*bitseq.Sequence, rune] {
	return func(yield func(*bitseq.Sequence, rune) bool) {
		walkTree(t.root, func(path *bitseq.Sequence, n Node) bool {
			if leaf, ok := n.(*Leaf); ok && leaf != nil {
				return yield(path, leaf.Char)
			}
			return true
		})
	}
}

// Dump writes a programmer-readable debugging dump of the DecodeTree's
// current state to the given writer.  Missing children are listed as nil.
func (t *DecodeTree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("DecodeTree{\n")
	fmt.Fprintf(&buf, "\tIsValid() = %t\n", t.IsValid())
	walkTree(t.root, func(path *bitseq.Sequence, n Node) bool {
		switch x := n.(type) {
		case nil:
			fmt.Fprintf(&buf, "\tDecode(%q) = nil\n", path.String())
		case *Leaf:
			fmt.Fprintf(&buf, "\tDecode(%q) = %q\n", path.String(), x.Char)
		}
		return true
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
