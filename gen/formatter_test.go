package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndentFormatterBraceDepth(t *testing.T) {
	f := IndentFormatter{}

	source := "object Foo {\ndef bar: Int = 1\n}"
	out, err := f.Format(source)
	require.NoError(t, err)
	assert.Equal(t, "object Foo {\n  def bar: Int = 1\n}", out)
}

func TestIndentFormatterNesting(t *testing.T) {
	f := IndentFormatter{}

	source := "object Foo {\nobject Bar {\ndef baz: Int = 1\n}\n}"
	out, err := f.Format(source)
	require.NoError(t, err)
	assert.Equal(t, "object Foo {\n  object Bar {\n    def baz: Int = 1\n  }\n}", out)
}

func TestIndentFormatterIgnoresBracesInStringLiterals(t *testing.T) {
	f := IndentFormatter{}

	source := "object Foo {\nval s = \"{ not a brace }\"\n}"
	out, err := f.Format(source)
	require.NoError(t, err)
	assert.Equal(t, "object Foo {\n  val s = \"{ not a brace }\"\n}", out)
}

func TestIndentFormatterBlankLinesPreserved(t *testing.T) {
	f := IndentFormatter{}

	source := "object Foo {\n\ndef bar: Int = 1\n}"
	out, err := f.Format(source)
	require.NoError(t, err)
	assert.Equal(t, "object Foo {\n\n  def bar: Int = 1\n}", out)
}

func TestIndentFormatterCustomWidth(t *testing.T) {
	f := IndentFormatter{IndentWidth: 4}

	source := "object Foo {\ndef bar: Int = 1\n}"
	out, err := f.Format(source)
	require.NoError(t, err)
	assert.Equal(t, "object Foo {\n    def bar: Int = 1\n}", out)
}
