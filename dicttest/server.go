// Package dicttest provides a scripted in-process DICT server for
// exercising protocol clients in tests.
package dicttest

import (
	"bufio"
	"net"
	"strings"

	"golang.org/x/sync/errgroup"
)

// HandlerFunc produces the raw response for one received command line.
// The returned response is written verbatim; set closeConn to drop the
// connection after writing it (write an empty response and set closeConn
// to simulate a server that dies without replying).
type HandlerFunc func(command string) (response string, closeConn bool)

// Server is a DICT server bound to a loopback port that greets each
// connection with a fixed banner and answers commands via a HandlerFunc.
type Server struct {
	listener net.Listener
	group    errgroup.Group
	banner   string
	handler  HandlerFunc
}

// NewServer starts a server on an ephemeral loopback port. The banner is
// written, CRLF-terminated, as soon as a client connects; an empty
// banner suppresses the greeting to simulate a silent server.
func NewServer(banner string, handler HandlerFunc) (*Server, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s := &Server{
		listener: l,
		banner:   banner,
		handler:  handler,
	}
	s.group.Go(s.serve)
	return s, nil
}

// Addr returns the host:port address the server listens on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Close stops listening and waits for in-flight connections to finish.
func (s *Server) Close() error {
	err := s.listener.Close()
	if werr := s.group.Wait(); werr != nil && err == nil {
		err = werr
	}
	return err
}

func (s *Server) serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			// Accept fails once the listener is closed.
			return nil
		}
		s.group.Go(func() error {
			s.handleConn(conn)
			return nil
		})
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	if s.banner != "" {
		if _, err := conn.Write([]byte(s.banner + "\r\n")); err != nil {
			return
		}
	}
	r := bufio.NewReader(conn)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return
		}
		command := strings.TrimRight(line, "\r\n")
		response, closeConn := s.handler(command)
		if response != "" {
			if _, err := conn.Write([]byte(response)); err != nil {
				return
			}
		}
		if closeConn {
			return
		}
	}
}

// Reply joins reply lines with CRLF terminators into a raw response.
func Reply(lines ...string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\r\n") + "\r\n"
}
