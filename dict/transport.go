package dict

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"net/textproto"
	"time"

	"github.com/fwojciec/worddef"
	"golang.org/x/net/proxy"
)

// conn is a line-oriented connection to a DICT server. Every read and
// write carries a deadline derived from the configured timeout and the
// caller's context, so a stalled server cannot hang a lookup.
type conn struct {
	netConn net.Conn
	text    *textproto.Reader
	timeout time.Duration
}

// dialConn opens a TCP connection to address, honoring proxy environment
// variables such as ALL_PROXY.
func dialConn(ctx context.Context, address string, timeout time.Duration) (*conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	nc, err := proxy.Dial(dialCtx, "tcp", address)
	if err != nil {
		return nil, worddef.Errorf(worddef.ECONNECTION, "failed to connect to %s: %v", address, err)
	}
	return newConn(nc, timeout), nil
}

func newConn(nc net.Conn, timeout time.Duration) *conn {
	return &conn{
		netConn: nc,
		text:    textproto.NewReader(bufio.NewReader(nc)),
		timeout: timeout,
	}
}

// deadline returns the earlier of now+timeout and the context deadline.
func (c *conn) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(d) {
		d = ctxDeadline
	}
	return d
}

// readLine reads one CRLF-terminated line, without the terminator.
func (c *conn) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", worddef.Errorf(worddef.ECONNECTION, "read canceled: %v", err)
	}
	if err := c.netConn.SetReadDeadline(c.deadline(ctx)); err != nil {
		return "", worddef.Errorf(worddef.ECONNECTION, "set read deadline: %v", err)
	}
	line, err := c.text.ReadLine()
	if err != nil {
		return "", readError(err)
	}
	return line, nil
}

// writeLine writes one line followed by CRLF.
func (c *conn) writeLine(ctx context.Context, line string) error {
	if err := ctx.Err(); err != nil {
		return worddef.Errorf(worddef.ECONNECTION, "write canceled: %v", err)
	}
	if err := c.netConn.SetWriteDeadline(c.deadline(ctx)); err != nil {
		return worddef.Errorf(worddef.ECONNECTION, "set write deadline: %v", err)
	}
	if _, err := io.WriteString(c.netConn, line+"\r\n"); err != nil {
		return worddef.Errorf(worddef.ECONNECTION, "write to server: %v", err)
	}
	return nil
}

func (c *conn) close() error {
	return c.netConn.Close()
}

// readError maps transport-level read failures onto the error taxonomy.
// Timeouts are connection errors; a server that closes the connection
// mid-reply is a malformed-reply error because the exchange was cut
// short.
func readError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return worddef.Errorf(worddef.ECONNECTION, "read from server timed out: %v", err)
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return worddef.Errorf(worddef.EMALFORMED, "connection closed mid-reply")
	}
	return worddef.Errorf(worddef.ECONNECTION, "read from server: %v", err)
}
