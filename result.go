package worddef

import (
	"fmt"
	"html"
	"strings"
)

// Result is one entry in the launcher's bulk-text result list. The field
// set mirrors the launcher's pipe contract: a title line, the content
// rendered in the preview pane, and the content shown when the entry is
// paged forward.
type Result struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	NextContent string `json:"next_content"`
	Icon        string `json:"icon,omitempty"`
}

// pangoSpan wraps preformatted text in the monospace markup envelope the
// launcher renders bulk-text content with. Markup metacharacters in the
// text are escaped first.
func pangoSpan(text string) string {
	return "<span font_desc=\"monospace\">\n" + html.EscapeString(text) + "</span>"
}

// LauncherResult consolidates the definitions for one word into the
// single bulk-text entry the launcher renders per query. An empty lookup
// is a valid result, not an error.
func LauncherResult(word string, defs []*Definition, icon string) Result {
	if len(defs) == 0 {
		return Result{Title: "No definition found", Icon: icon}
	}
	content := pangoSpan(FormatDefinitions(defs))
	return Result{
		Title:       fmt.Sprintf("Definition of %q", word),
		Content:     content,
		NextContent: content,
		Icon:        icon,
	}
}

// MatchResult consolidates the MATCH results for one word into a single
// bulk-text entry.
func MatchResult(word string, matches []*Match, icon string) Result {
	if len(matches) == 0 {
		return Result{Title: fmt.Sprintf("No matches for %q", word), Icon: icon}
	}
	content := pangoSpan(FormatMatches(matches))
	return Result{
		Title:       fmt.Sprintf("Matches for %q", word),
		Content:     content,
		NextContent: content,
		Icon:        icon,
	}
}

// EntryResults returns one bulk-text entry per definition, titled by
// headword and source database.
func EntryResults(defs []*Definition, icon string) []Result {
	results := make([]Result, 0, len(defs))
	for _, d := range defs {
		text := d.Text()
		results = append(results, Result{
			Title:       fmt.Sprintf("%s [%s]", d.Headword, d.Database),
			Content:     text,
			NextContent: text,
			Icon:        icon,
		})
	}
	return results
}

// MatchEntryResults returns one bulk-text entry per MATCH result.
func MatchEntryResults(matches []*Match, icon string) []Result {
	results := make([]Result, 0, len(matches))
	for _, m := range matches {
		results = append(results, Result{
			Title:       fmt.Sprintf("%s [%s]", m.Term, m.Database),
			Content:     m.Term,
			NextContent: m.Term,
			Icon:        icon,
		})
	}
	return results
}

// DatabaseResults returns one bulk-text entry per server database.
func DatabaseResults(dbs []*Database, icon string) []Result {
	results := make([]Result, 0, len(dbs))
	for _, db := range dbs {
		results = append(results, Result{
			Title:   db.Name,
			Content: db.Description,
			Icon:    icon,
		})
	}
	return results
}

// StrategyResults returns one bulk-text entry per match strategy.
func StrategyResults(strats []*Strategy, icon string) []Result {
	results := make([]Result, 0, len(strats))
	for _, s := range strats {
		results = append(results, Result{
			Title:   s.Name,
			Content: s.Description,
			Icon:    icon,
		})
	}
	return results
}

// ErrorResult converts a failed lookup into a single launcher-visible
// error entry. The launcher renders it like any other result; the
// diagnostic detail still goes to stderr.
func ErrorResult(err error, icon string) Result {
	var title string
	switch ErrorCode(err) {
	case ECONNECTION:
		title = "Dictionary server unreachable"
	case ESERVER:
		title = "Dictionary server error"
	case EINVALID:
		title = "Invalid dictionary query"
	default:
		title = "Dictionary lookup failed"
	}
	return Result{Title: title, Content: ErrorMessage(err), Icon: icon}
}

// FormatDefinitions renders definitions the way dict(1)-style clients
// print them: a "From <description> [<name>]:" header per database
// followed by the definition text. Definitions are separated by blank
// lines.
func FormatDefinitions(defs []*Definition) string {
	if len(defs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range defs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "From %s [%s]:\n\n", d.DatabaseDesc, d.Database)
		b.WriteString(d.Text())
		b.WriteString("\n")
	}
	return b.String()
}

// FormatMatches renders MATCH results one per line as "database<TAB>term".
func FormatMatches(matches []*Match) string {
	var b strings.Builder
	for _, m := range matches {
		fmt.Fprintf(&b, "%s\t%s\n", m.Database, m.Term)
	}
	return b.String()
}

// FormatDatabases renders a database listing one per line as
// "name: description".
func FormatDatabases(dbs []*Database) string {
	var b strings.Builder
	for _, db := range dbs {
		fmt.Fprintf(&b, "%s: %s\n", db.Name, db.Description)
	}
	return b.String()
}

// FormatStrategies renders a strategy listing one per line as
// "name: description".
func FormatStrategies(strats []*Strategy) string {
	var b strings.Builder
	for _, s := range strats {
		fmt.Fprintf(&b, "%s: %s\n", s.Name, s.Description)
	}
	return b.String()
}
