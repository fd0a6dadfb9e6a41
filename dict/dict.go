// Package dict provides a DICT protocol (RFC 2229) implementation of
// worddef.DictionaryService for querying dictionary servers over TCP.
package dict

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/worddef"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds the dial and every subsequent read and write on
// the connection.
const DefaultTimeout = 10 * time.Second

// DefaultRate is the default command pacing in commands per second.
const DefaultRate = 8.0

// Ensure Client implements worddef.DictionaryService at compile time.
var _ worddef.DictionaryService = (*Client)(nil)

// Client is a session with a DICT server. It issues one command at a
// time on a single TCP connection and is not safe for concurrent use.
type Client struct {
	conn    *conn
	state   state
	banner  banner
	limiter *rate.Limiter
	logger  *slog.Logger
	timeout time.Duration
	rps     float64
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout applied to the dial and to every read and
// write on the connection. Defaults to DefaultTimeout (10s).
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithRate sets the command pacing in commands per second. Defaults to
// DefaultRate.
func WithRate(rps float64) Option {
	return func(c *Client) {
		c.rps = rps
	}
}

// WithLogger sets the logger used for wire-level debug logging.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// Dial connects to a DICT server and consumes its greeting. The returned
// Client is ready to issue commands; callers must Close it to end the
// session.
func Dial(ctx context.Context, address string, opts ...Option) (*Client, error) {
	c := &Client{
		state:   stateDisconnected,
		timeout: DefaultTimeout,
		rps:     DefaultRate,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.limiter = rate.NewLimiter(rate.Limit(c.rps), 1)

	nc, err := dialConn(ctx, address, c.timeout)
	if err != nil {
		return nil, err
	}
	c.conn = nc
	c.state = stateAwaitingGreeting

	r, err := c.conn.readReply(ctx)
	if err != nil {
		c.conn.close()
		return nil, err
	}
	next, _, err := transition(c.state, r.code)
	if err != nil {
		c.conn.close()
		return nil, err
	}
	c.state = next
	c.banner = parseBanner(r.message)
	c.logger.Debug("connected",
		"address", address,
		"msgid", c.banner.msgID,
		"capabilities", c.banner.capabilities,
	)
	return c, nil
}

// Define looks up word in database and returns every definition the
// server holds for it. An empty slice, not an error, means the server
// has no definition for the word.
func (c *Client) Define(ctx context.Context, database, word string) ([]*worddef.Definition, error) {
	if word == "" {
		return nil, worddef.Errorf(worddef.EINVALID, "word required")
	}
	if database == "" {
		database = worddef.DefaultDatabase
	}
	if !singleLine(word) {
		return nil, worddef.Errorf(worddef.EINVALID, "word must be a single line")
	}
	if !singleLine(database) {
		return nil, worddef.Errorf(worddef.EINVALID, "database must be a single line")
	}
	replies, ev, err := c.exchange(ctx, formatDefine(database, word))
	if err != nil {
		return nil, err
	}
	if ev == eventNoMatch {
		return []*worddef.Definition{}, nil
	}
	return definitionsFromReplies(replies)
}

// Match looks up word in database using the given match strategy and
// returns the matching headwords. An empty slice means no headword
// matched.
func (c *Client) Match(ctx context.Context, database, strategy, word string) ([]*worddef.Match, error) {
	if word == "" {
		return nil, worddef.Errorf(worddef.EINVALID, "word required")
	}
	if database == "" {
		database = worddef.DefaultDatabase
	}
	if strategy == "" {
		strategy = worddef.DefaultStrategy
	}
	if !singleLine(word) {
		return nil, worddef.Errorf(worddef.EINVALID, "word must be a single line")
	}
	if !singleLine(database) {
		return nil, worddef.Errorf(worddef.EINVALID, "database must be a single line")
	}
	if !singleLine(strategy) {
		return nil, worddef.Errorf(worddef.EINVALID, "strategy must be a single line")
	}
	replies, ev, err := c.exchange(ctx, formatMatch(database, strategy, word))
	if err != nil {
		return nil, err
	}
	matches := []*worddef.Match{}
	if ev == eventNoMatch {
		return matches, nil
	}
	count := -1
	for _, r := range replies {
		if r.code != 152 {
			return nil, worddef.Errorf(worddef.EMALFORMED, "unexpected %d reply during match retrieval", r.code)
		}
		n, err := parseCount(r.message)
		if err != nil {
			return nil, err
		}
		count = n
		for _, line := range r.lines {
			m, err := parseMatchLine(line)
			if err != nil {
				return nil, err
			}
			matches = append(matches, m)
		}
	}
	if count >= 0 && count != len(matches) {
		return nil, worddef.Errorf(worddef.EPARSE, "server announced %d matches but sent %d", count, len(matches))
	}
	return matches, nil
}

// Databases returns the databases the server offers.
func (c *Client) Databases(ctx context.Context) ([]*worddef.Database, error) {
	replies, ev, err := c.exchange(ctx, "SHOW DB")
	if err != nil {
		return nil, err
	}
	dbs := []*worddef.Database{}
	if ev == eventNoMatch {
		return dbs, nil
	}
	for _, r := range replies {
		if r.code != 110 {
			return nil, worddef.Errorf(worddef.EMALFORMED, "unexpected %d reply during database listing", r.code)
		}
		for _, line := range r.lines {
			name, desc, err := parseListingLine(line)
			if err != nil {
				return nil, err
			}
			dbs = append(dbs, &worddef.Database{Name: name, Description: desc})
		}
	}
	return dbs, nil
}

// Strategies returns the match strategies the server supports.
func (c *Client) Strategies(ctx context.Context) ([]*worddef.Strategy, error) {
	replies, ev, err := c.exchange(ctx, "SHOW STRAT")
	if err != nil {
		return nil, err
	}
	strats := []*worddef.Strategy{}
	if ev == eventNoMatch {
		return strats, nil
	}
	for _, r := range replies {
		if r.code != 111 {
			return nil, worddef.Errorf(worddef.EMALFORMED, "unexpected %d reply during strategy listing", r.code)
		}
		for _, line := range r.lines {
			name, desc, err := parseListingLine(line)
			if err != nil {
				return nil, err
			}
			strats = append(strats, &worddef.Strategy{Name: name, Description: desc})
		}
	}
	return strats, nil
}

// Close ends the session. An idle connection gets the QUIT courtesy
// exchange; a connection mid-exchange or already broken is closed
// outright. Close never fails because QUIT did.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	if c.state == stateReady {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		c.quit(ctx)
		cancel()
	}
	err := c.conn.close()
	c.conn = nil
	c.state = stateDisconnected
	return err
}

// exchange sends one command and collects replies until the exchange
// reaches a terminal event. Intermediate text-bearing replies are
// returned in order; a server-reported failure comes back as an ESERVER
// error carrying the status line verbatim.
func (c *Client) exchange(ctx context.Context, command string) ([]*reply, event, error) {
	if c.conn == nil || c.state != stateReady {
		return nil, eventNone, worddef.Errorf(worddef.EINTERNAL, "connection not ready for %q", command)
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, eventNone, worddef.Errorf(worddef.ECONNECTION, "canceled before send: %v", err)
	}
	c.logger.Debug("send", "command", command)
	if err := c.conn.writeLine(ctx, command); err != nil {
		return nil, eventNone, err
	}
	c.state = stateAwaitingReply

	var replies []*reply
	for {
		r, err := c.conn.readReply(ctx)
		if err != nil {
			return nil, eventNone, err
		}
		c.logger.Debug("recv",
			"code", r.code,
			"message", r.message,
			"lines", len(r.lines),
		)
		next, ev, err := transition(c.state, r.code)
		if err != nil {
			return nil, eventNone, err
		}
		c.state = next
		switch ev {
		case eventOK:
			return replies, ev, nil
		case eventNoMatch:
			return nil, ev, nil
		case eventServerError:
			return nil, ev, worddef.Errorf(worddef.ESERVER, "%s", r.statusLine())
		}
		replies = append(replies, r)
	}
}

// quit performs the QUIT exchange. Failures are logged and otherwise
// ignored; the socket is closed regardless.
func (c *Client) quit(ctx context.Context) {
	c.logger.Debug("send", "command", "QUIT")
	if err := c.conn.writeLine(ctx, "QUIT"); err != nil {
		c.logger.Debug("quit failed", "error", err.Error())
		return
	}
	c.state = stateClosing
	r, err := c.conn.readReply(ctx)
	if err != nil {
		c.logger.Debug("quit failed", "error", err.Error())
		return
	}
	next, ev, err := transition(c.state, r.code)
	if err != nil || ev != eventClosed {
		c.logger.Debug("quit failed", "code", r.code)
		return
	}
	c.state = next
}

// definitionsFromReplies converts a DEFINE exchange into definitions,
// checking the count the server announced against the definitions it
// actually sent.
func definitionsFromReplies(replies []*reply) ([]*worddef.Definition, error) {
	if len(replies) == 0 || replies[0].code != 150 {
		return nil, worddef.Errorf(worddef.EMALFORMED, "definitions arrived without a 150 preamble")
	}
	count, err := parseCount(replies[0].message)
	if err != nil {
		return nil, err
	}
	defs := make([]*worddef.Definition, 0, len(replies)-1)
	for _, r := range replies[1:] {
		if r.code != 151 {
			return nil, worddef.Errorf(worddef.EMALFORMED, "unexpected %d reply during definition retrieval", r.code)
		}
		word, name, desc, err := parseDefinitionHeader(r.message)
		if err != nil {
			return nil, err
		}
		def := &worddef.Definition{
			Headword:     word,
			Database:     name,
			DatabaseDesc: desc,
			Body:         r.lines,
		}
		if err := def.Validate(); err != nil {
			return nil, worddef.Errorf(worddef.EPARSE, "invalid definition in reply: %s", worddef.ErrorMessage(err))
		}
		defs = append(defs, def)
	}
	if len(defs) != count {
		return nil, worddef.Errorf(worddef.EPARSE, "server announced %d definitions but sent %d", count, len(defs))
	}
	return defs, nil
}
