package inbuilt

import (
	"strings"

	"github.com/indigo-web/minihttp/http"
)

// Exact matches the path as it is.
func Exact(path string) Matcher {
	return func(request *http.Request) bool {
		return request.Path == path
	}
}

// Contains matches every path containing the keyword anywhere, e.g. Contains("files")
// matches /files/a.txt as well as /filesystem and /x/myfiles.
func Contains(keyword string) Matcher {
	return func(request *http.Request) bool {
		return strings.Contains(request.Path, keyword)
	}
}

// Segment matches paths whose first segment is exactly the keyword, e.g. Segment("files")
// matches /files and /files/a.txt, but not /filesystem.
func Segment(keyword string) Matcher {
	return func(request *http.Request) bool {
		segment, found := request.Segment(1)
		return found && segment == keyword
	}
}
