package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polysql/sqlparser/source"
)

func TestPeekDoesNotConsume(t *testing.T) {
	r := source.New("ab")
	ch, ok := r.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', ch)
	ch, ok = r.Peek()
	require.True(t, ok)
	assert.Equal(t, 'a', ch)
}

func TestAdvanceConsumesInOrder(t *testing.T) {
	r := source.New("ab")
	ch, ok := r.Advance()
	require.True(t, ok)
	assert.Equal(t, 'a', ch)
	ch, ok = r.Advance()
	require.True(t, ok)
	assert.Equal(t, 'b', ch)
	_, ok = r.Advance()
	assert.False(t, ok)
}

func TestPeekNth(t *testing.T) {
	r := source.New("abc")
	ch, ok := r.PeekNth(2)
	require.True(t, ok)
	assert.Equal(t, 'c', ch)
}

func TestEofAndRest(t *testing.T) {
	r := source.New("xy")
	assert.False(t, r.Eof())
	r.Advance()
	r.Advance()
	assert.True(t, r.Eof())
	assert.Equal(t, "", r.Rest())
}

func TestLineColumnTracksNewlines(t *testing.T) {
	r := source.New("a\nb")
	r.Advance() // 'a'
	pos := r.Position()
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 2, pos.Column)
	r.Advance() // '\n'
	pos = r.Position()
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 1, pos.Column)
}

func TestCRLFCountsAsOneNewline(t *testing.T) {
	r := source.New("a\r\nb")
	r.Advance() // 'a'
	r.Advance() // '\r'
	lineAfterCR := r.Position().Line
	r.Advance() // '\n'
	lineAfterLF := r.Position().Line
	assert.Equal(t, lineAfterCR, lineAfterLF)
}

func TestSliceExtractsConsumedRun(t *testing.T) {
	r := source.New("hello world")
	start := r.Offset()
	for i := 0; i < 5; i++ {
		r.Advance()
	}
	assert.Equal(t, "hello", r.Slice(start))
}
