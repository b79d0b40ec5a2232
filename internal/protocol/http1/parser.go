package http1

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/kv"
	"github.com/indigo-web/utils/uf"
)

// All the parser errors wrap status.ErrBadRequest.
var (
	ErrEmptyRequest   = fmt.Errorf("%w: empty request", status.ErrBadRequest)
	ErrBadEncoding    = fmt.Errorf("%w: request isn't a valid utf-8 text", status.ErrBadRequest)
	ErrBadRequestLine = fmt.Errorf("%w: malformed request line", status.ErrBadRequest)
	ErrBadHeader      = fmt.Errorf("%w: malformed header line", status.ErrBadRequest)
)

const (
	crlf            = "\r\n"
	headerSeparator = ": "
	// preallocHeaders is the initial capacity of the headers storage.
	preallocHeaders = 8
)

// Parse decodes a single received buffer into a request. The data is split by CRLF:
// the first line is the request line, the last one is the body and everything in
// between are headers. Empty header lines are skipped.
//
// Strings of the returned request point into data, so data must stay untouched as long
// as the request is in use.
func Parse(data []byte) (*http.Request, error) {
	if len(data) == 0 {
		return nil, ErrEmptyRequest
	}

	if !utf8.Valid(data) {
		return nil, ErrBadEncoding
	}

	raw := uf.B2S(data)
	requestLine, rest, found := strings.Cut(raw, crlf)
	if !found {
		return nil, fmt.Errorf("%w: %q: no CRLF", ErrBadRequestLine, requestLine)
	}

	request := http.NewRequest(kv.NewPrealloc(preallocHeaders))
	if err := parseRequestLine(request, requestLine); err != nil {
		return nil, err
	}

	var headers string
	if sep := strings.LastIndex(rest, crlf); sep != -1 {
		headers, request.Body = rest[:sep], rest[sep+len(crlf):]
	} else {
		request.Body = rest
	}

	if err := parseHeaders(request.Headers, headers); err != nil {
		return nil, err
	}

	return request, nil
}

func parseRequestLine(request *http.Request, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) != 3 {
		return fmt.Errorf("%w: %q: want method, path and version", ErrBadRequestLine, line)
	}

	request.Method = strings.ToLower(tokens[0])
	request.Path = tokens[1]
	request.Version = tokens[2]

	return nil
}

func parseHeaders(headers http.Headers, data string) error {
	for len(data) > 0 {
		var line string
		line, data, _ = strings.Cut(data, crlf)
		if len(line) == 0 {
			continue
		}

		key, value, found := strings.Cut(line, headerSeparator)
		if !found {
			return fmt.Errorf("%w: %q", ErrBadHeader, line)
		}

		headers.Set(strings.ToLower(key), value)
	}

	return nil
}
