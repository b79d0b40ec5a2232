package status

type (
	Code   uint16
	Status string
)

// HTTP status codes the server is able to emit.
// See: https://www.iana.org/assignments/http-status-codes/http-status-codes.xhtml
const (
	OK                  Code = 200 // RFC 9110, 15.3.1
	Created             Code = 201 // RFC 9110, 15.3.2
	BadRequest          Code = 400 // RFC 9110, 15.5.1
	NotFound            Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed    Code = 405 // RFC 9110, 15.5.6
	InternalServerError Code = 500 // RFC 9110, 15.6.1

	// CloseConnection isn't a real status code. Errors carrying it mean that no response
	// must be written at all and the connection must be closed.
	CloseConnection Code = 1
)

// KnownCodes lists every real code Text knows.
var KnownCodes = []Code{OK, Created, BadRequest, NotFound, MethodNotAllowed, InternalServerError}

// Text returns a reason phrase for the HTTP status code. It returns the empty
// string if the code is unknown.
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case Created:
		return "Created"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return ""
	}
}
