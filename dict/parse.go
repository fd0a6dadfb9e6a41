package dict

import (
	"strconv"
	"strings"

	"github.com/fwojciec/worddef"
)

// scanAtom consumes one atom or quoted string from s, returning the
// decoded value and the unconsumed remainder. Quoted strings may use
// single or double quotes and backslash escapes. ok is false when s
// holds no further atom or a quoted string is left unterminated.
func scanAtom(s string) (value, rest string, ok bool) {
	s = strings.TrimLeft(s, " \t")
	if s == "" {
		return "", "", false
	}
	if s[0] == '"' || s[0] == '\'' {
		quote := s[0]
		var b strings.Builder
		for i := 1; i < len(s); i++ {
			switch s[i] {
			case '\\':
				if i+1 >= len(s) {
					return "", "", false
				}
				i++
				b.WriteByte(s[i])
			case quote:
				return b.String(), s[i+1:], true
			default:
				b.WriteByte(s[i])
			}
		}
		return "", "", false
	}
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, "", true
	}
	return s[:i], s[i:], true
}

// parseDefinitionHeader parses the parameters of a 151 reply: the
// headword as the server spelled it, the database name, and the database
// description. It checks grammar only; field presence is the domain
// type's concern.
func parseDefinitionHeader(params string) (word, name, desc string, err error) {
	malformed := func() (string, string, string, error) {
		return "", "", "", worddef.Errorf(worddef.EPARSE, "malformed definition header %q", params)
	}
	word, rest, ok := scanAtom(params)
	if !ok {
		return malformed()
	}
	name, rest, ok = scanAtom(rest)
	if !ok {
		return malformed()
	}
	desc, _, ok = scanAtom(rest)
	if !ok {
		return malformed()
	}
	return word, name, desc, nil
}

// parseCount extracts the leading integer from a reply message such as
// "2 definitions retrieved".
func parseCount(message string) (int, error) {
	fields := strings.Fields(message)
	if len(fields) == 0 {
		return 0, worddef.Errorf(worddef.EPARSE, "reply %q carries no count", message)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, worddef.Errorf(worddef.EPARSE, "reply %q carries no count", message)
	}
	return n, nil
}

// parseMatchLine parses one line of a 152 text block: a database name
// followed by the matched term, which may be quoted.
func parseMatchLine(line string) (*worddef.Match, error) {
	name, rest, ok := scanAtom(line)
	if !ok || name == "" {
		return nil, worddef.Errorf(worddef.EPARSE, "malformed match line %q", line)
	}
	term, _, ok := scanAtom(rest)
	if !ok || term == "" {
		return nil, worddef.Errorf(worddef.EPARSE, "malformed match line %q", line)
	}
	return &worddef.Match{Database: name, Term: term}, nil
}

// parseListingLine parses one line of a 110 or 111 text block: a name
// followed by a quoted description. Both listings share the grammar.
func parseListingLine(line string) (name, desc string, err error) {
	name, rest, ok := scanAtom(line)
	if !ok || name == "" {
		return "", "", worddef.Errorf(worddef.EPARSE, "malformed listing line %q", line)
	}
	desc, _, ok = scanAtom(rest)
	if !ok {
		return "", "", worddef.Errorf(worddef.EPARSE, "malformed listing line %q", line)
	}
	return name, desc, nil
}

// banner holds the parsed 220 greeting.
type banner struct {
	message      string
	capabilities []string
	msgID        string
}

// parseBanner splits the greeting text into its free-form message, the
// dot-separated capability list, and the message id. Servers vary in how
// much of the banner they send, so missing sections simply stay empty.
func parseBanner(text string) banner {
	b := banner{message: strings.TrimSpace(text)}
	var groups []string
	for i := 0; i < len(text); i++ {
		if text[i] != '<' {
			continue
		}
		j := strings.IndexByte(text[i:], '>')
		if j < 0 {
			break
		}
		groups = append(groups, text[i+1:i+j])
		i += j
	}
	if len(groups) == 0 {
		return b
	}
	last := groups[len(groups)-1]
	if len(groups) == 1 {
		// A lone bracketed group is a msg-id when it looks like one,
		// otherwise a capability list.
		if strings.Contains(last, "@") {
			b.msgID = last
		} else if last != "" {
			b.capabilities = strings.Split(last, ".")
		}
		return b
	}
	b.msgID = last
	if caps := groups[len(groups)-2]; caps != "" {
		b.capabilities = strings.Split(caps, ".")
	}
	return b
}
