package http

import (
	"net"
	"strings"

	"github.com/indigo-web/minihttp/kv"
)

type (
	Headers = *kv.Storage
	Header  = kv.Pair
)

// Request represents HTTP request
type Request struct {
	// Method is always lowercased.
	Method string
	// Path is kept exactly as it was received. It is never url-decoded.
	Path string
	// Version is the protocol token from the request line, e.g. HTTP/1.1.
	Version string
	// Headers hold lowercased keys. If a header occurs more than once, the last
	// occurrence wins.
	Headers Headers
	// Body is everything after the last CRLF of the received data.
	Body string
	// Remote holds the remote address. Might be nil.
	Remote net.Addr
}

func NewRequest(headers Headers) *Request {
	return &Request{
		Headers: headers,
	}
}

// Segment returns the path element by the index, as if the path was split by a slash.
// The leading slash produces an empty element at index 0, so in /echo/abc the index 1
// is echo and 2 is abc.
func (r *Request) Segment(index int) (segment string, found bool) {
	if index < 0 {
		return "", false
	}

	path := r.Path

	for ; index > 0; index-- {
		sep := strings.IndexByte(path, '/')
		if sep == -1 {
			return "", false
		}

		path = path[sep+1:]
	}

	if sep := strings.IndexByte(path, '/'); sep != -1 {
		path = path[:sep]
	}

	return path, true
}
