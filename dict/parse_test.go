package dict

import (
	"testing"

	"github.com/fwojciec/worddef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanAtom(t *testing.T) {
	t.Parallel()

	t.Run("scans bare atom", func(t *testing.T) {
		t.Parallel()

		value, rest, ok := scanAtom("wn ubiquitous")

		require.True(t, ok)
		assert.Equal(t, "wn", value)
		assert.Equal(t, " ubiquitous", rest)
	})

	t.Run("scans double quoted string", func(t *testing.T) {
		t.Parallel()

		value, rest, ok := scanAtom("\"hot dog\" wn")

		require.True(t, ok)
		assert.Equal(t, "hot dog", value)
		assert.Equal(t, " wn", rest)
	})

	t.Run("scans single quoted string", func(t *testing.T) {
		t.Parallel()

		value, _, ok := scanAtom("'hot dog'")

		require.True(t, ok)
		assert.Equal(t, "hot dog", value)
	})

	t.Run("decodes backslash escapes", func(t *testing.T) {
		t.Parallel()

		value, _, ok := scanAtom(`"say \"hi\" \\now"`)

		require.True(t, ok)
		assert.Equal(t, `say "hi" \now`, value)
	})

	t.Run("skips leading whitespace", func(t *testing.T) {
		t.Parallel()

		value, _, ok := scanAtom("   wn")

		require.True(t, ok)
		assert.Equal(t, "wn", value)
	})

	t.Run("reports nothing to scan", func(t *testing.T) {
		t.Parallel()

		_, _, ok := scanAtom("   ")

		assert.False(t, ok)
	})

	t.Run("rejects unterminated quoted string", func(t *testing.T) {
		t.Parallel()

		_, _, ok := scanAtom("\"no closing quote")

		assert.False(t, ok)
	})
}

func TestParseDefinitionHeader(t *testing.T) {
	t.Parallel()

	t.Run("parses quoted headword and description", func(t *testing.T) {
		t.Parallel()

		word, name, desc, err := parseDefinitionHeader(`"ubiquitous" wn "WordNet (r) 3.0 (2006)"`)

		require.NoError(t, err)
		assert.Equal(t, "ubiquitous", word)
		assert.Equal(t, "wn", name)
		assert.Equal(t, "WordNet (r) 3.0 (2006)", desc)
	})

	t.Run("parses bare headword", func(t *testing.T) {
		t.Parallel()

		word, name, desc, err := parseDefinitionHeader(`hello gcide "The Collaborative International Dictionary"`)

		require.NoError(t, err)
		assert.Equal(t, "hello", word)
		assert.Equal(t, "gcide", name)
		assert.Equal(t, "The Collaborative International Dictionary", desc)
	})

	t.Run("accepts empty quoted atoms", func(t *testing.T) {
		t.Parallel()

		word, name, _, err := parseDefinitionHeader(`"" wn "WordNet"`)

		require.NoError(t, err)
		assert.Empty(t, word)
		assert.Equal(t, "wn", name)
	})

	t.Run("rejects header without description", func(t *testing.T) {
		t.Parallel()

		_, _, _, err := parseDefinitionHeader(`"ubiquitous" wn`)

		assert.Equal(t, worddef.EPARSE, worddef.ErrorCode(err))
	})

	t.Run("rejects empty header", func(t *testing.T) {
		t.Parallel()

		_, _, _, err := parseDefinitionHeader("")

		assert.Equal(t, worddef.EPARSE, worddef.ErrorCode(err))
	})
}

func TestParseCount(t *testing.T) {
	t.Parallel()

	t.Run("extracts leading count", func(t *testing.T) {
		t.Parallel()

		n, err := parseCount("2 definitions retrieved")

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("rejects message without count", func(t *testing.T) {
		t.Parallel()

		_, err := parseCount("definitions retrieved")

		assert.Equal(t, worddef.EPARSE, worddef.ErrorCode(err))
	})

	t.Run("rejects negative count", func(t *testing.T) {
		t.Parallel()

		_, err := parseCount("-1 definitions retrieved")

		assert.Equal(t, worddef.EPARSE, worddef.ErrorCode(err))
	})

	t.Run("rejects empty message", func(t *testing.T) {
		t.Parallel()

		_, err := parseCount("")

		assert.Equal(t, worddef.EPARSE, worddef.ErrorCode(err))
	})
}

func TestParseMatchLine(t *testing.T) {
	t.Parallel()

	t.Run("parses bare term", func(t *testing.T) {
		t.Parallel()

		m, err := parseMatchLine("wn ubiquitous")

		require.NoError(t, err)
		assert.Equal(t, "wn", m.Database)
		assert.Equal(t, "ubiquitous", m.Term)
	})

	t.Run("parses quoted term", func(t *testing.T) {
		t.Parallel()

		m, err := parseMatchLine(`wn "hot dog"`)

		require.NoError(t, err)
		assert.Equal(t, "wn", m.Database)
		assert.Equal(t, "hot dog", m.Term)
	})

	t.Run("rejects line without term", func(t *testing.T) {
		t.Parallel()

		_, err := parseMatchLine("wn")

		assert.Equal(t, worddef.EPARSE, worddef.ErrorCode(err))
	})
}

func TestParseListingLine(t *testing.T) {
	t.Parallel()

	t.Run("parses name and quoted description", func(t *testing.T) {
		t.Parallel()

		name, desc, err := parseListingLine(`wn "WordNet (r) 3.0 (2006)"`)

		require.NoError(t, err)
		assert.Equal(t, "wn", name)
		assert.Equal(t, "WordNet (r) 3.0 (2006)", desc)
	})

	t.Run("rejects line without description", func(t *testing.T) {
		t.Parallel()

		_, _, err := parseListingLine("wn")

		assert.Equal(t, worddef.EPARSE, worddef.ErrorCode(err))
	})
}

func TestParseBanner(t *testing.T) {
	t.Parallel()

	t.Run("parses capabilities and message id", func(t *testing.T) {
		t.Parallel()

		b := parseBanner("dict.dict.org dictd 1.12.1/rf on Linux 4.19.0-10-amd64 <auth.mime> <100@dict.dict.org>")

		assert.Equal(t, []string{"auth", "mime"}, b.capabilities)
		assert.Equal(t, "100@dict.dict.org", b.msgID)
	})

	t.Run("parses lone message id", func(t *testing.T) {
		t.Parallel()

		b := parseBanner("hello <42@example.org>")

		assert.Empty(t, b.capabilities)
		assert.Equal(t, "42@example.org", b.msgID)
	})

	t.Run("parses lone capability list", func(t *testing.T) {
		t.Parallel()

		b := parseBanner("hello <mime>")

		assert.Equal(t, []string{"mime"}, b.capabilities)
		assert.Empty(t, b.msgID)
	})

	t.Run("tolerates banner without brackets", func(t *testing.T) {
		t.Parallel()

		b := parseBanner("plain greeting")

		assert.Equal(t, "plain greeting", b.message)
		assert.Empty(t, b.capabilities)
		assert.Empty(t, b.msgID)
	})
}
