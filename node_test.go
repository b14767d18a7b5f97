package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLeaf(t *testing.T) {
	leaf := NewLeaf('q')
	require.Equal(t, 'q', leaf.Char)
	require.True(t, leaf.IsLeaf())
	require.True(t, leaf.IsValidNode())
	require.True(t, leaf.IsValidTree())
}

func TestBranch_Validity(t *testing.T) {
	type testRow struct {
		name      string
		node      *Branch
		validNode bool
		validTree bool
	}

	testData := [...]testRow{
		{
			name:      "both-leaves",
			node:      NewBranch(NewLeaf('a'), NewLeaf('b')),
			validNode: true,
			validTree: true,
		},
		{
			name:      "missing-one",
			node:      NewBranch(NewLeaf('a'), nil),
			validNode: false,
			validTree: false,
		},
		{
			name:      "missing-zero",
			node:      NewBranch(nil, NewLeaf('b')),
			validNode: false,
			validTree: false,
		},
		{
			name:      "empty",
			node:      NewBranch(nil, nil),
			validNode: false,
			validTree: false,
		},
		{
			name:      "typed-nil-child",
			node:      NewBranch(NewLeaf('a'), (*Leaf)(nil)),
			validNode: false,
			validTree: false,
		},
		{
			name:      "deep-valid",
			node:      NewBranch(NewLeaf('a'), NewBranch(NewLeaf('b'), NewBranch(NewLeaf('c'), NewLeaf('d')))),
			validNode: true,
			validTree: true,
		},
		{
			name:      "deep-orphan",
			node:      NewBranch(NewLeaf('a'), NewBranch(NewLeaf('b'), NewBranch(nil, NewLeaf('d')))),
			validNode: true,
			validTree: false,
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			require.False(t, row.node.IsLeaf())
			require.Equal(t, row.validNode, row.node.IsValidNode())
			require.Equal(t, row.validTree, row.node.IsValidTree())
		})
	}
}

func TestBranch_Children(t *testing.T) {
	zero, one := NewLeaf('0'), NewLeaf('1')
	b := NewBranch(zero, one)
	require.Same(t, zero, b.Zero())
	require.Same(t, one, b.One())
	require.Same(t, zero, b.Child(false))
	require.Same(t, one, b.Child(true))

	b = NewBranch((*Branch)(nil), nil)
	require.Nil(t, b.Zero())
	require.Nil(t, b.One())
}

func TestBranch_NilReceiver(t *testing.T) {
	var b *Branch
	require.False(t, b.IsValidNode())
	require.False(t, b.IsValidTree())
}

func TestFindInvalid(t *testing.T) {
	root := NewBranch(
		NewBranch(NewLeaf('a'), NewLeaf('b')),
		NewBranch(NewLeaf('c'), NewBranch(NewLeaf('d'), nil)),
	)
	path := findInvalid(root)
	require.NotNil(t, path)
	require.Equal(t, "11", path.String())

	require.Nil(t, findInvalid(NewBranch(NewLeaf('a'), NewLeaf('b'))))
	require.Nil(t, findInvalid(nil))
}
