package huffman

import (
	"github.com/pkg/errors"
)

var (
	// ErrNoMapping is returned by CodeBook.Encode when the text contains a
	// character that has no sequence in the CodeBook.
	ErrNoMapping = errors.New("huffman: no mapping for character")

	// ErrEmptyTree is returned when decoding with, or validating, a
	// DecodeTree that has no root.
	ErrEmptyTree = errors.New("huffman: decode tree is empty")

	// ErrTruncated is returned by DecodeTree.Decode when the input ends
	// part way through a code.
	ErrTruncated = errors.New("huffman: input ends inside a code")

	// ErrUnknownCode is returned by DecodeTree.Decode when the input
	// follows a path that the tree does not have.
	ErrUnknownCode = errors.New("huffman: bit sequence matches no code")

	// ErrInvalidShape is returned by DecodeTree.Validate when a branch is
	// missing one of its children.
	ErrInvalidShape = errors.New("huffman: branch node is missing a child")

	// ErrDegenerateCode is returned by NewCanonicalCodeBook when the code
	// lengths do not describe a complete prefix code.
	ErrDegenerateCode = errors.New("huffman: degenerate Huffman code")
)
