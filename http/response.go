package http

import (
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/utils/strcomp"
	"github.com/indigo-web/utils/uf"
)

// preallocRespHeaders covers the largest header set ever emitted: Content-Encoding,
// Content-Type and Content-Length.
const preallocRespHeaders = 3

// Fields are the raw response attributes, as they are seen by the serializer.
type Fields struct {
	Code    status.Code
	Headers []Header
	Body    []byte
	// Sized indicates that a body was explicitly attached, so Content-Length must be
	// emitted even if the body is empty.
	Sized bool
}

type Response struct {
	fields Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// no headers and no body.
func NewResponse() *Response {
	return &Response{
		fields: Fields{
			Code:    status.OK,
			Headers: make([]Header, 0, preallocRespHeaders),
		},
	}
}

// Code sets a Response code.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// ContentType sets the Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	return r.Header("Content-Type", value)
}

// ContentEncoding sets the Content-Encoding header value.
func (r *Response) ContentEncoding(token string) *Response {
	return r.Header("Content-Encoding", token)
}

// Header appends a header. Content-Length is ignored, as it's always calculated from
// the actual body.
func (r *Response) Header(key, value string) *Response {
	if strcomp.EqualFold(key, "content-length") {
		return r
	}

	r.fields.Headers = append(r.fields.Headers, Header{
		Key:   key,
		Value: value,
	})

	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	r.fields.Sized = true
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	r.fields.Sized = true
	return len(b), nil
}

// Error returns a response with the code of the error, if it's a status.HTTPError.
// Otherwise, 500 Internal Server Error is set.
func (r *Response) Error(err error) *Response {
	return r.Code(status.CodeOf(err))
}

// Expose gives access to the response fields.
func (r *Response) Expose() *Fields {
	return &r.fields
}

// Respond is a shortcut for NewResponse().Code(code).
func Respond(code status.Code) *Response {
	return NewResponse().Code(code)
}

// Error is a shortcut for NewResponse().Error(err).
func Error(err error) *Response {
	return NewResponse().Error(err)
}
