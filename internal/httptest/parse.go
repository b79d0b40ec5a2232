// Package httptest parses raw responses emitted by the server, so tests may inspect them.
package httptest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/minihttp/kv"
)

type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
	Body    string
}

// Parse parses a response in its wire form. The body must be exactly as long as the
// Content-Length says, or empty if there's no Content-Length at all.
func Parse(raw string) (response Response, err error) {
	var found bool
	response = Response{Headers: kv.New()}

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad response line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, err
	}

	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad response line: lacking status")
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad response: only response line is presented")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %q: no breaking CRLF", headerLine)
		}
		if len(headerLine) == 0 {
			break
		}

		key, value, ok := strings.Cut(headerLine, ": ")
		if !ok {
			return response, fmt.Errorf("bad header %q: no value", headerLine)
		}

		if response.Headers.Has(key) {
			return response, fmt.Errorf("duplicate header %s", key)
		}

		response.Headers.Set(key, value)
	}

	response.Body, err = processBody(response, raw)

	return response, err
}

func processBody(response Response, data string) (string, error) {
	contentLength, found := response.Headers.Get("content-length")
	if !found {
		if len(data) == 0 {
			return "", nil
		}

		return "", fmt.Errorf("bad response: got body without Content-Length")
	}

	length, err := strconv.Atoi(contentLength)
	if err != nil {
		return "", err
	}

	if len(data) != length {
		return "", fmt.Errorf("bad response: Content-Length is %d, but body is %d bytes long", length, len(data))
	}

	return data, nil
}
