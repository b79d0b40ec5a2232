package method

type Method uint8

const (
	Unknown Method = iota
	GET
	POST
)

// Parse recognizes a lowercased request method. Every method except get and post
// results in Unknown, as those are the only ones being served.
func Parse(str string) Method {
	switch str {
	case "get":
		return GET
	case "post":
		return POST
	default:
		return Unknown
	}
}

func (m Method) String() string {
	switch m {
	case GET:
		return "GET"
	case POST:
		return "POST"
	default:
		return "UNKNOWN"
	}
}
