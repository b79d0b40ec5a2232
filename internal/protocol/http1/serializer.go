package http1

import (
	"strconv"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
)

const protocol = "HTTP/1.1 "

// Serialize appends the response in its wire form to buff and returns the extended
// slice. Content-Length is emitted only for responses with an attached body, and is
// always equal to the actual body length.
func Serialize(buff []byte, response *http.Response) []byte {
	resp := response.Expose()

	buff = append(buff, protocol...)
	buff = strconv.AppendUint(buff, uint64(resp.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, status.Text(resp.Code)...)
	buff = append(buff, crlf...)

	for _, header := range resp.Headers {
		buff = appendHeader(buff, header.Key, header.Value)
	}

	if resp.Sized {
		buff = append(buff, "Content-Length: "...)
		buff = strconv.AppendInt(buff, int64(len(resp.Body)), 10)
		buff = append(buff, crlf...)
	}

	buff = append(buff, crlf...)

	return append(buff, resp.Body...)
}

func appendHeader(buff []byte, key, value string) []byte {
	buff = append(buff, key...)
	buff = append(buff, headerSeparator...)
	buff = append(buff, value...)
	return append(buff, crlf...)
}
