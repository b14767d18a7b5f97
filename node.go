package huffman

import (
	"github.com/chronos-tachyon/huffbook/bitseq"
)

// Node is one node of a DecodeTree.  It is either a *Leaf, which holds a
// decoded character, or a *Branch, which holds a zero-child and a one-child.
type Node interface {
	// IsLeaf returns true iff this node holds a character.
	IsLeaf() bool

	// IsValidNode returns true iff this node is a leaf, or a branch with
	// both children present.
	IsValidNode() bool

	// IsValidTree returns true iff this node and every node below it are
	// valid nodes.
	IsValidTree() bool

	isNode()
}

// Leaf is a Node holding exactly one decoded character.
type Leaf struct {
	Char rune
}

// NewLeaf constructs a Leaf holding c.
func NewLeaf(c rune) *Leaf {
	return &Leaf{Char: c}
}

func (*Leaf) IsLeaf() bool { return true }
func (*Leaf) IsValidNode() bool { return true }
func (*Leaf) IsValidTree() bool { return true }
func (*Leaf) isNode() {}

// Branch is a Node with a zero-child and a one-child.  A Branch with a
// missing child can be built, but is not valid.
type Branch struct {
	child [2]Node
}

// NewBranch constructs a Branch.  Either child may be nil.
func NewBranch(zero, one Node) *Branch {
	b := new(Branch)
	if !isAbsent(zero) {
		b.child[0] = zero
	}
	if !isAbsent(one) {
		b.child[1] = one
	}
	return b
}

// Zero returns the child reached by a 0 bit, or nil.
func (b *Branch) Zero() Node {
	return b.child[0]
}

// One returns the child reached by a 1 bit, or nil.
func (b *Branch) One() Node {
	return b.child[1]
}

// Child returns the child reached by bit, or nil.
func (b *Branch) Child(bit bool) Node {
	return b.child[bitIndex(bit)]
}

func (*Branch) IsLeaf() bool { return false }

func (b *Branch) IsValidNode() bool {
	return b != nil && !isAbsent(b.child[0]) && !isAbsent(b.child[1])
}

func (b *Branch) IsValidTree() bool {
	return b != nil && findInvalid(b) == nil
}

func (*Branch) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Branch)(nil)
)

// isAbsent treats both a nil interface and a typed nil pointer as a missing
// node.
func isAbsent(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *Leaf:
		return x == nil
	case *Branch:
		return x == nil
	}
	return false
}

func bitIndex(bit bool) int {
	if bit {
		return 1
	}
	return 0
}

type pathItem struct {
	node Node
	path *bitseq.Sequence
}

// walkTree visits every slot of the trie rooted at root in depth-first order,
// zero-child before one-child, parents before children.  Missing children of
// a branch are visited with a nil node.  Iteration stops early if fn returns
// false.  Uses an explicit stack, not recursion.
//
func walkTree(root Node, fn func(path *bitseq.Sequence, n Node) bool) {
	if isAbsent(root) {
		return
	}

	stack := []pathItem{{node: root, path: new(bitseq.Sequence)}}
	for len(stack) != 0 {
		last := len(stack) - 1
		top := stack[last]
		stack[last] = pathItem{}
		stack = stack[:last]

		if !fn(top.path, top.node) {
			return
		}

		b, ok := top.node.(*Branch)
		if !ok || b == nil {
			continue
		}

		// Push the one-child first so that the zero-child pops first.
		for index := 1; index >= 0; index-- {
			child := b.child[index]
			if isAbsent(child) {
				child = nil
			}
			path := top.path.Clone()
			path.AppendBit(index == 1)
			stack = append(stack, pathItem{node: child, path: path})
		}
	}
}

// findInvalid returns the path of the first node below root that is not a
// valid node, or nil if there is none.
func findInvalid(root Node) *bitseq.Sequence {
	var bad *bitseq.Sequence
	walkTree(root, func(path *bitseq.Sequence, n Node) bool {
		if n != nil && !n.IsValidNode() {
			bad = path
			return false
		}
		return true
	})
	return bad
}
