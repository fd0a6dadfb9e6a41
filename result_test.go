package worddef_test

import (
	"testing"

	"github.com/fwojciec/worddef"
	"github.com/stretchr/testify/assert"
)

func TestLauncherResult(t *testing.T) {
	t.Parallel()

	t.Run("consolidates definitions into one entry", func(t *testing.T) {
		t.Parallel()

		defs := []*worddef.Definition{
			{
				Headword:     "ubiquitous",
				Database:     "wn",
				DatabaseDesc: "WordNet (r) 3.0 (2006)",
				Body:         []string{"ubiquitous", "    adj 1: being present everywhere at once"},
			},
		}

		result := worddef.LauncherResult("ubiquitous", defs, "accessories-dictionary")

		assert.Equal(t, "Definition of \"ubiquitous\"", result.Title)
		expected := "<span font_desc=\"monospace\">\n" +
			"From WordNet (r) 3.0 (2006) [wn]:\n\nubiquitous\n    adj 1: being present everywhere at once\n" +
			"</span>"
		assert.Equal(t, expected, result.Content)
		assert.Equal(t, result.Content, result.NextContent)
		assert.Equal(t, "accessories-dictionary", result.Icon)
	})

	t.Run("escapes markup in definition text", func(t *testing.T) {
		t.Parallel()

		defs := []*worddef.Definition{
			{
				Headword:     "tag",
				Database:     "jargon",
				DatabaseDesc: "Jargon File",
				Body:         []string{"see <metasyntactic> & friends"},
			},
		}

		result := worddef.LauncherResult("tag", defs, "")

		assert.Contains(t, result.Content, "&lt;metasyntactic&gt; &amp; friends")
		assert.NotContains(t, result.Content, "<metasyntactic>")
	})

	t.Run("reports empty lookup without error", func(t *testing.T) {
		t.Parallel()

		result := worddef.LauncherResult("zzzz", nil, "accessories-dictionary")

		assert.Equal(t, "No definition found", result.Title)
		assert.Empty(t, result.Content)
		assert.Empty(t, result.NextContent)
		assert.Equal(t, "accessories-dictionary", result.Icon)
	})
}

func TestMatchResult(t *testing.T) {
	t.Parallel()

	t.Run("consolidates matches into one entry", func(t *testing.T) {
		t.Parallel()

		matches := []*worddef.Match{
			{Database: "wn", Term: "ubiquitous"},
			{Database: "gcide", Term: "ubiquity"},
		}

		result := worddef.MatchResult("ubiq", matches, "")

		assert.Equal(t, "Matches for \"ubiq\"", result.Title)
		assert.Equal(t, "<span font_desc=\"monospace\">\nwn\tubiquitous\ngcide\tubiquity\n</span>", result.Content)
		assert.Equal(t, result.Content, result.NextContent)
	})

	t.Run("reports empty match without error", func(t *testing.T) {
		t.Parallel()

		result := worddef.MatchResult("zzzz", nil, "")

		assert.Equal(t, "No matches for \"zzzz\"", result.Title)
		assert.Empty(t, result.Content)
	})
}

func TestEntryResults(t *testing.T) {
	t.Parallel()

	t.Run("returns one entry per definition", func(t *testing.T) {
		t.Parallel()

		defs := []*worddef.Definition{
			{Headword: "go", Database: "wn", Body: []string{"go", "    v 1: change location"}},
			{Headword: "go", Database: "gcide", Body: []string{"Go \\Go\\, v. i."}},
		}

		results := worddef.EntryResults(defs, "icon")

		assert.Len(t, results, 2)
		assert.Equal(t, "go [wn]", results[0].Title)
		assert.Equal(t, "go\n    v 1: change location", results[0].Content)
		assert.Equal(t, results[0].Content, results[0].NextContent)
		assert.Equal(t, "go [gcide]", results[1].Title)
	})

	t.Run("returns empty slice for no definitions", func(t *testing.T) {
		t.Parallel()

		results := worddef.EntryResults(nil, "icon")

		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}

func TestErrorResult(t *testing.T) {
	t.Parallel()

	t.Run("maps connection errors to unreachable title", func(t *testing.T) {
		t.Parallel()

		err := worddef.Errorf(worddef.ECONNECTION, "failed to connect to dict.org:2628: connection refused")

		result := worddef.ErrorResult(err, "icon")

		assert.Equal(t, "Dictionary server unreachable", result.Title)
		assert.Equal(t, "failed to connect to dict.org:2628: connection refused", result.Content)
		assert.Equal(t, "icon", result.Icon)
	})

	t.Run("maps server errors to server error title", func(t *testing.T) {
		t.Parallel()

		err := worddef.Errorf(worddef.ESERVER, "550 invalid database, use SHOW DB for list")

		result := worddef.ErrorResult(err, "")

		assert.Equal(t, "Dictionary server error", result.Title)
		assert.Equal(t, "550 invalid database, use SHOW DB for list", result.Content)
	})

	t.Run("maps invalid input to invalid query title", func(t *testing.T) {
		t.Parallel()

		err := worddef.Errorf(worddef.EINVALID, "word required")

		result := worddef.ErrorResult(err, "")

		assert.Equal(t, "Invalid dictionary query", result.Title)
	})

	t.Run("uses generic title for other errors", func(t *testing.T) {
		t.Parallel()

		err := worddef.Errorf(worddef.EPARSE, "malformed definition header")

		result := worddef.ErrorResult(err, "")

		assert.Equal(t, "Dictionary lookup failed", result.Title)
	})
}

func TestFormatDefinitions(t *testing.T) {
	t.Parallel()

	t.Run("formats single definition with database header", func(t *testing.T) {
		t.Parallel()

		defs := []*worddef.Definition{
			{
				Headword:     "hello",
				Database:     "wn",
				DatabaseDesc: "WordNet (r) 3.0 (2006)",
				Body:         []string{"hello", "    n 1: an expression of greeting"},
			},
		}

		result := worddef.FormatDefinitions(defs)

		expected := "From WordNet (r) 3.0 (2006) [wn]:\n\nhello\n    n 1: an expression of greeting\n"
		assert.Equal(t, expected, result)
	})

	t.Run("separates definitions with blank line", func(t *testing.T) {
		t.Parallel()

		defs := []*worddef.Definition{
			{Headword: "hi", Database: "wn", DatabaseDesc: "WordNet", Body: []string{"first"}},
			{Headword: "hi", Database: "gcide", DatabaseDesc: "GCIDE", Body: []string{"second"}},
		}

		result := worddef.FormatDefinitions(defs)

		expected := "From WordNet [wn]:\n\nfirst\n\nFrom GCIDE [gcide]:\n\nsecond\n"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty string for nil slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, worddef.FormatDefinitions(nil))
	})
}

func TestFormatMatches(t *testing.T) {
	t.Parallel()

	matches := []*worddef.Match{
		{Database: "wn", Term: "apple"},
		{Database: "wn", Term: "apple tree"},
	}

	result := worddef.FormatMatches(matches)

	assert.Equal(t, "wn\tapple\nwn\tapple tree\n", result)
}

func TestFormatDatabases(t *testing.T) {
	t.Parallel()

	dbs := []*worddef.Database{
		{Name: "wn", Description: "WordNet (r) 3.0 (2006)"},
		{Name: "gcide", Description: "The Collaborative International Dictionary of English v.0.48"},
	}

	result := worddef.FormatDatabases(dbs)

	expected := "wn: WordNet (r) 3.0 (2006)\ngcide: The Collaborative International Dictionary of English v.0.48\n"
	assert.Equal(t, expected, result)
}

func TestFormatStrategies(t *testing.T) {
	t.Parallel()

	strats := []*worddef.Strategy{
		{Name: "exact", Description: "Match headwords exactly"},
		{Name: "prefix", Description: "Match prefixes"},
	}

	result := worddef.FormatStrategies(strats)

	expected := "exact: Match headwords exactly\nprefix: Match prefixes\n"
	assert.Equal(t, expected, result)
}
