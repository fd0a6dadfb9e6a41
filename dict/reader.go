package dict

import (
	"context"
	"strconv"
	"strings"

	"github.com/fwojciec/worddef"
)

// reply is one status reply from the server together with the
// dot-terminated text block that follows it, for codes that carry one.
type reply struct {
	code    int
	message string
	lines   []string
}

// statusLine reconstructs the status line as the server sent it, for
// verbatim error reporting.
func (r *reply) statusLine() string {
	if r.message == "" {
		return strconv.Itoa(r.code)
	}
	return strconv.Itoa(r.code) + " " + r.message
}

// textFollows reports whether a reply code announces a dot-terminated
// text block.
func textFollows(code int) bool {
	switch code {
	case 110, 111, 112, 113, 114, 151, 152:
		return true
	}
	return false
}

// parseStatusLine splits a status line into its three-digit code and the
// parameter text that follows. The code must be exactly three digits
// followed by a space or end of line.
func parseStatusLine(line string) (int, string, error) {
	if len(line) < 3 {
		return 0, "", worddef.Errorf(worddef.EMALFORMED, "malformed status line %q", line)
	}
	code := 0
	for i := 0; i < 3; i++ {
		ch := line[i]
		if ch < '0' || ch > '9' {
			return 0, "", worddef.Errorf(worddef.EMALFORMED, "malformed status line %q", line)
		}
		code = code*10 + int(ch-'0')
	}
	switch {
	case len(line) == 3:
		return code, "", nil
	case line[3] == ' ':
		return code, line[4:], nil
	}
	return 0, "", worddef.Errorf(worddef.EMALFORMED, "malformed status line %q", line)
}

// decodeTextLine undoes the dot escaping applied to text block lines and
// reports whether the line is the block terminator. A line holding a
// single period ends the block; a doubled leading period transmits a
// line that itself starts with a period.
func decodeTextLine(line string) (text string, terminator bool) {
	if line == "." {
		return "", true
	}
	if strings.HasPrefix(line, ".") {
		return line[1:], false
	}
	return line, false
}

// readReply reads the next status line and, when the code announces one,
// the text block that follows it.
func (c *conn) readReply(ctx context.Context) (*reply, error) {
	line, err := c.readLine(ctx)
	if err != nil {
		return nil, err
	}
	code, message, err := parseStatusLine(line)
	if err != nil {
		return nil, err
	}
	r := &reply{code: code, message: message}
	if !textFollows(code) {
		return r, nil
	}
	for {
		line, err := c.readLine(ctx)
		if err != nil {
			return nil, err
		}
		text, terminator := decodeTextLine(line)
		if terminator {
			return r, nil
		}
		r.lines = append(r.lines, text)
	}
}
