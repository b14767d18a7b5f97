package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCanonicalCodeBook(t *testing.T) {
	cb, err := NewCanonicalCodeBook(map[rune]int{'a': 4, 'b': 4, 'c': 3, 'd': 3, 'e': 3, 'f': 1})
	require.NoError(t, err)

	expectDump := strings.Join([]string{
		"CodeBook{\n",
		"\tLen() = 6\n",
		"\tEncode('f') = \"0\"\n",
		"\tEncode('c') = \"100\"\n",
		"\tEncode('d') = \"101\"\n",
		"\tEncode('e') = \"110\"\n",
		"\tEncode('a') = \"1110\"\n",
		"\tEncode('b') = \"1111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = cb.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	tree := NewDecodeTreeFromCodeBook(cb)
	require.True(t, tree.IsValid())
}

func TestNewCanonicalCodeBook_Degenerate(t *testing.T) {
	type testRow struct {
		name    string
		lengths map[rune]int
		ok      bool
		size    int
	}

	testData := [...]testRow{
		{name: "empty", lengths: map[rune]int{}, ok: true, size: 0},
		{name: "all-zero", lengths: map[rune]int{'a': 0, 'b': 0}, ok: true, size: 0},
		{name: "single", lengths: map[rune]int{'x': 1}, ok: true, size: 1},
		{name: "single-long", lengths: map[rune]int{'x': 2}, ok: false},
		{name: "pair", lengths: map[rune]int{'x': 1, 'y': 1}, ok: true, size: 2},
		{name: "incomplete", lengths: map[rune]int{'x': 1, 'y': 2}, ok: false},
		{name: "oversubscribed", lengths: map[rune]int{'x': 1, 'y': 1, 'z': 1}, ok: false},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			cb, err := NewCanonicalCodeBook(row.lengths)
			if !row.ok {
				require.True(t, errors.Is(err, ErrDegenerateCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, row.size, cb.Len())
		})
	}
}

func TestNewCanonicalCodeBook_BadLength(t *testing.T) {
	_, err := NewCanonicalCodeBook(map[rune]int{'a': 1, 'b': MaxCodeLength + 1})
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid code length")

	_, err = NewCanonicalCodeBook(map[rune]int{'a': -1})
	require.Error(t, err)
}

func TestCodeBook_Lengths(t *testing.T) {
	cb := makeCanonicalCodeBook(t)
	lengths := cb.Lengths()
	require.Equal(t, map[rune]int{'a': 4, 'b': 4, 'c': 3, 'd': 3, 'e': 3, 'f': 1}, lengths)

	rebuilt, err := NewCanonicalCodeBook(lengths)
	require.NoError(t, err)
	for c, seq := range cb.All() {
		got, found := rebuilt.GetSequence(c)
		require.True(t, found)
		require.True(t, seq.Equal(got), "%q: expect %s, got %s", c, seq, got)
	}
}
