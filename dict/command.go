package dict

import (
	"fmt"
	"strings"
)

// needsQuoting reports whether an argument must be sent as a quoted
// string rather than a bare atom. Atoms cannot be empty or contain
// whitespace, quotes, or backslashes.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsAny(s, " \t'\"\\")
}

// singleLine reports whether s is free of CR and LF. Commands are read
// per line, so quoting cannot hide a line break; an embedded one reaches
// the server as extra commands.
func singleLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}

// quoteAtom renders a command argument, double-quoting it when it cannot
// stand as a bare atom. Quotes and backslashes inside a quoted string are
// escaped with a backslash.
func quoteAtom(s string) string {
	if !needsQuoting(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' || s[i] == '\\' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

func formatDefine(database, word string) string {
	return fmt.Sprintf("DEFINE %s %s", quoteAtom(database), quoteAtom(word))
}

func formatMatch(database, strategy, word string) string {
	return fmt.Sprintf("MATCH %s %s %s", quoteAtom(database), quoteAtom(strategy), quoteAtom(word))
}
