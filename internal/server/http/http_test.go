package http

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/internal/protocol/http1"
	"github.com/indigo-web/minihttp/router/inbuilt"
	"github.com/indigo-web/minihttp/transport"
	"github.com/indigo-web/minihttp/transport/dummy"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func getServer() *Server {
	return getLoggedServer(zerolog.Nop())
}

func getLoggedServer(log zerolog.Logger) *Server {
	r := inbuilt.New().
		Get(inbuilt.Exact("/"), func(*http.Request) *http.Response {
			return http.Respond(status.OK)
		}).
		Get(inbuilt.Exact("/panic"), func(*http.Request) *http.Response {
			panic("handler is broken")
		}).
		Get(inbuilt.Exact("/nil"), func(*http.Request) *http.Response {
			return nil
		})

	return NewServer(r, log)
}

func handle(server *Server, conn *dummy.Conn, buffSize int) error {
	return server.HandleRequest(transport.NewClient(conn, time.Second, make([]byte, buffSize)))
}

func TestServer(t *testing.T) {
	server := getServer()

	t.Run("served", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"))
		require.NoError(t, handle(server, conn, 4096))
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", string(conn.Written))
	})

	t.Run("only the first read is used", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"), []byte("GET /unknown HTTP/1.1\r\n\r\n"))
		require.NoError(t, handle(server, conn, 4096))
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", string(conn.Written))
	})

	t.Run("malformed", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET /\r\n\r\n"))
		err := handle(server, conn, 4096)
		require.ErrorIs(t, err, http1.ErrBadRequestLine)
		require.ErrorIs(t, err, status.ErrBadRequest)
		require.ErrorIs(t, err, status.ErrCloseConnection)
		require.Equal(t, status.CloseConnection, status.CodeOf(err))
		require.Empty(t, conn.Written)
	})

	t.Run("truncated request line", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"))
		err := handle(server, conn, 8)
		require.ErrorIs(t, err, status.ErrBadRequest)
		require.Empty(t, conn.Written)
	})

	t.Run("nothing received", func(t *testing.T) {
		conn := dummy.NewConn()
		err := handle(server, conn, 4096)
		require.ErrorIs(t, err, io.EOF)
		require.ErrorIs(t, err, status.ErrCloseConnection)
		require.Empty(t, conn.Written)
	})

	t.Run("read error", func(t *testing.T) {
		readErr := errors.New("connection reset")
		conn := dummy.NewConn().ReadError(readErr)
		err := handle(server, conn, 4096)
		require.ErrorIs(t, err, readErr)
		require.ErrorIs(t, err, status.ErrCloseConnection)
	})

	t.Run("read error after data", func(t *testing.T) {
		var logs bytes.Buffer
		logged := getLoggedServer(zerolog.New(&logs).Level(zerolog.DebugLevel))

		readErr := errors.New("connection reset")
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n")).ReadError(readErr)
		require.NoError(t, handle(logged, conn, 4096))
		require.Equal(t, "HTTP/1.1 200 OK\r\n\r\n", string(conn.Written))
		require.Contains(t, logs.String(), "read failed after receiving data")
		require.Contains(t, logs.String(), "connection reset")
	})

	t.Run("panicking handler", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET /panic HTTP/1.1\r\n\r\n"))
		err := handle(server, conn, 4096)
		require.ErrorIs(t, err, status.ErrInternalServerError)
		require.Empty(t, conn.Written)
	})

	t.Run("nil response", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET /nil HTTP/1.1\r\n\r\n"))
		require.NoError(t, handle(server, conn, 4096))
		require.Equal(t, "HTTP/1.1 500 Internal Server Error\r\n\r\n", string(conn.Written))
	})

	t.Run("write error", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"))
		conn.Closed = true
		err := handle(server, conn, 4096)
		require.Error(t, err)
		require.NotErrorIs(t, err, status.ErrCloseConnection)
	})
}
