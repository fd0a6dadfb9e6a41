package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteAtom(t *testing.T) {
	t.Parallel()

	t.Run("leaves bare atoms alone", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "ubiquitous", quoteAtom("ubiquitous"))
	})

	t.Run("quotes phrases", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `"hot dog"`, quoteAtom("hot dog"))
	})

	t.Run("quotes empty string", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `""`, quoteAtom(""))
	})

	t.Run("escapes embedded quotes and backslashes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, `"say \"hi\""`, quoteAtom(`say "hi"`))
		assert.Equal(t, `"a\\b"`, quoteAtom(`a\b`))
	})
}

func TestSingleLine(t *testing.T) {
	t.Parallel()

	assert.True(t, singleLine("ubiquitous"))
	assert.True(t, singleLine("hot dog"))
	assert.True(t, singleLine(""))
	assert.False(t, singleLine("foo\nbar"))
	assert.False(t, singleLine("foo\rbar"))
	assert.False(t, singleLine("trailing\r\n"))
}

func TestFormatDefine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEFINE * ubiquitous", formatDefine("*", "ubiquitous"))
	assert.Equal(t, `DEFINE wn "hot dog"`, formatDefine("wn", "hot dog"))
}

func TestFormatMatch(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "MATCH * . ubiquitous", formatMatch("*", ".", "ubiquitous"))
	assert.Equal(t, `MATCH wn prefix "hot d"`, formatMatch("wn", "prefix", "hot d"))
}
