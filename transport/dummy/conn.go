package dummy

import (
	"io"
	"net"
	"time"
)

var _ net.Conn = new(Conn)

// Conn is an in-memory connection. Reads return the data it was initialised with
// piece by piece, followed by io.EOF. Everything written is collected in Written.
type Conn struct {
	pieces  [][]byte
	Written []byte
	Closed  bool
	readErr error
}

func NewConn(pieces ...[]byte) *Conn {
	return &Conn{pieces: pieces}
}

// ReadError makes every read fail with the passed error. Pending pieces are still
// returned, together with the error.
func (c *Conn) ReadError(err error) *Conn {
	c.readErr = err
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if len(c.pieces) == 0 {
		if c.readErr != nil {
			return 0, c.readErr
		}

		return 0, io.EOF
	}

	n = copy(b, c.pieces[0])
	c.pieces = c.pieces[1:]

	return n, c.readErr
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.Closed {
		return 0, net.ErrClosed
	}

	c.Written = append(c.Written, b...)
	return len(b), nil
}

func (c *Conn) Close() error {
	c.Closed = true
	return nil
}

func (c *Conn) LocalAddr() net.Addr {
	return nil
}

func (c *Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4221}
}

func (c *Conn) SetDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetReadDeadline(time.Time) error {
	return nil
}

func (c *Conn) SetWriteDeadline(time.Time) error {
	return nil
}
