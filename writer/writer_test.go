package writer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polysql/sqlparser/writer"
)

type fakeNode struct{ text string }

func (f fakeNode) ToSQL(w *writer.Writer) { w.WriteString(f.text) }

func TestWriteStringAndByte(t *testing.T) {
	w := writer.New()
	w.WriteString("SELECT").WriteByte(' ').WriteString("1")
	assert.Equal(t, "SELECT 1", w.String())
}

func TestKeywordUpperCases(t *testing.T) {
	w := writer.New()
	w.Keyword("select")
	assert.Equal(t, "SELECT", w.String())
}

func TestWriteNodeSkipsNil(t *testing.T) {
	w := writer.New()
	w.WriteNode(nil)
	assert.Equal(t, "", w.String())
}

func TestListJoinsWithDefaultSeparator(t *testing.T) {
	w := writer.New()
	items := []fakeNode{{"a"}, {"b"}, {"c"}}
	writer.List(w, items, "")
	assert.Equal(t, "a, b, c", w.String())
}

func TestListCustomSeparator(t *testing.T) {
	w := writer.New()
	items := []fakeNode{{"a"}, {"b"}}
	writer.List(w, items, " AND ")
	assert.Equal(t, "a AND b", w.String())
}

func TestFprintfPlaceholderSubstitution(t *testing.T) {
	w := writer.New()
	w.Fprintf("{}{}{}", writer.Keyword("select"), " ", fakeNode{"1"})
	assert.Equal(t, "SELECT 1", w.String())
}

func TestFprintfLiteralBraces(t *testing.T) {
	w := writer.New()
	w.Fprintf("a {} b", "x")
	assert.Equal(t, "a x b", w.String())
}
