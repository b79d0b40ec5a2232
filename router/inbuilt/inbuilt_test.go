package inbuilt

import (
	"testing"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/kv"
	"github.com/stretchr/testify/require"
)

func getRequest(method, path string) *http.Request {
	request := http.NewRequest(kv.New())
	request.Method = method
	request.Path = path

	return request
}

func respondWith(code status.Code) Handler {
	return func(*http.Request) *http.Response {
		return http.Respond(code)
	}
}

func codeOf(r *Router, method, path string) status.Code {
	return r.OnRequest(getRequest(method, path)).Expose().Code
}

func TestRouter(t *testing.T) {
	r := New().
		Get(Exact("/"), respondWith(status.OK)).
		Get(Contains("files"), respondWith(status.Created)).
		Get(Contains("file"), respondWith(status.BadRequest)).
		Post(Segment("files"), respondWith(status.Created))

	t.Run("exact", func(t *testing.T) {
		require.Equal(t, status.OK, codeOf(r, "get", "/"))
	})

	t.Run("first match wins", func(t *testing.T) {
		require.Equal(t, status.Created, codeOf(r, "get", "/files/a"))
		require.Equal(t, status.BadRequest, codeOf(r, "get", "/file/a"))
	})

	t.Run("no match", func(t *testing.T) {
		require.Equal(t, status.NotFound, codeOf(r, "get", "/nothing"))
		require.Equal(t, status.NotFound, codeOf(r, "post", "/"))
	})

	t.Run("unsupported methods", func(t *testing.T) {
		for _, m := range []string{"put", "delete", "head", "options", "GET"} {
			require.Equal(t, status.MethodNotAllowed, codeOf(r, m, "/"), m)
		}
	})

	t.Run("custom fallbacks", func(t *testing.T) {
		custom := New().
			NotFound(respondWith(status.BadRequest)).
			MethodNotAllowed(respondWith(status.InternalServerError))
		require.Equal(t, status.BadRequest, codeOf(custom, "get", "/"))
		require.Equal(t, status.InternalServerError, codeOf(custom, "put", "/"))
	})
}

func TestMatchers(t *testing.T) {
	tcs := []struct {
		Matcher Matcher
		Path    string
		Want    bool
	}{
		{Exact("/"), "/", true},
		{Exact("/"), "//", false},
		{Contains("files"), "/files/a.txt", true},
		{Contains("files"), "/filesystem", true},
		{Contains("files"), "/x/myfiles", true},
		{Contains("files"), "/file", false},
		{Segment("files"), "/files/a.txt", true},
		{Segment("files"), "/files", true},
		{Segment("files"), "/filesystem", false},
		{Segment("files"), "/x/files", false},
		{Segment("user-agent"), "/user-agent-x", false},
	}

	for _, tc := range tcs {
		require.Equal(t, tc.Want, tc.Matcher(getRequest("get", tc.Path)), tc.Path)
	}
}
