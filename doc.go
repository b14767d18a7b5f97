// Package huffman implements the two halves of a Huffman code: a CodeBook,
// which maps characters to their bit sequences for encoding, and a
// DecodeTree, a binary trie which maps bit sequences back to characters.
//
// How the code itself is chosen (counting frequencies, building an optimal
// tree) is left to the caller.  A typical flow populates a CodeBook, derives
// a DecodeTree from it with NewDecodeTreeFromCodeBook, and then shares both
// read-only between any number of goroutines calling Encode and Decode.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
//     <https://en.wikipedia.org/wiki/Prefix_code>
//
package huffman
