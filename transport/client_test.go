package transport

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/indigo-web/minihttp/transport/dummy"
	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	t.Run("single read", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n"), []byte("\r\n"))
		client := NewClient(conn, time.Second, make([]byte, 64))

		data, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "GET / HTTP/1.1\r\n", string(data))
	})

	t.Run("truncated by the buffer", func(t *testing.T) {
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n\r\n"))
		client := NewClient(conn, 0, make([]byte, 5))

		data, err := client.Read()
		require.NoError(t, err)
		require.Equal(t, "GET /", string(data))
	})

	t.Run("eof", func(t *testing.T) {
		client := NewClient(dummy.NewConn(), time.Second, make([]byte, 64))
		data, err := client.Read()
		require.ErrorIs(t, err, io.EOF)
		require.Empty(t, data)
	})

	t.Run("data with an error", func(t *testing.T) {
		readErr := errors.New("connection reset")
		conn := dummy.NewConn([]byte("GET / HTTP/1.1\r\n")).ReadError(readErr)
		client := NewClient(conn, time.Second, make([]byte, 64))

		data, err := client.Read()
		require.ErrorIs(t, err, readErr)
		require.Equal(t, "GET / HTTP/1.1\r\n", string(data))

		data, err = client.Read()
		require.ErrorIs(t, err, readErr)
		require.Empty(t, data)
	})

	t.Run("write", func(t *testing.T) {
		conn := dummy.NewConn()
		client := NewClient(conn, time.Second, nil)
		_, err := client.Write([]byte("hello"))
		require.NoError(t, err)
		require.Equal(t, "hello", string(conn.Written))
		require.NotNil(t, client.Remote())
	})
}
