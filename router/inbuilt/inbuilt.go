package inbuilt

import (
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/router"
)

var _ router.Router = new(Router)

type (
	Handler func(request *http.Request) *http.Response
	// Matcher decides whether the route is applicable for the request.
	Matcher func(request *http.Request) bool
)

type route struct {
	match   Matcher
	handler Handler
}

// Router is a built-in implementation of router.Router interface. Routes are grouped by
// method and evaluated in the order of registration, so the first matching route wins.
type Router struct {
	routes           [method.POST + 1][]route
	notFound         Handler
	methodNotAllowed Handler
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		notFound:         errorHandler(status.ErrNotFound),
		methodNotAllowed: errorHandler(status.ErrMethodNotAllowed),
	}
}

// Route registers a new route. Routes registered for method.Unknown are never reached.
func (r *Router) Route(m method.Method, match Matcher, handler Handler) *Router {
	r.routes[m] = append(r.routes[m], route{
		match:   match,
		handler: handler,
	})

	return r
}

// Get is a shortcut for registering GET-requests.
func (r *Router) Get(match Matcher, handler Handler) *Router {
	return r.Route(method.GET, match, handler)
}

// Post is a shortcut for registering POST-requests.
func (r *Router) Post(match Matcher, handler Handler) *Router {
	return r.Route(method.POST, match, handler)
}

// NotFound replaces the handler called when no route of a supported method matched.
func (r *Router) NotFound(handler Handler) *Router {
	r.notFound = handler
	return r
}

// MethodNotAllowed replaces the handler called for every unsupported method.
func (r *Router) MethodNotAllowed(handler Handler) *Router {
	r.methodNotAllowed = handler
	return r
}

// OnRequest routes the request.
func (r *Router) OnRequest(request *http.Request) *http.Response {
	m := method.Parse(request.Method)
	if m == method.Unknown {
		return r.methodNotAllowed(request)
	}

	for _, rt := range r.routes[m] {
		if rt.match(request) {
			return rt.handler(request)
		}
	}

	return r.notFound(request)
}

func errorHandler(err error) Handler {
	return func(*http.Request) *http.Response {
		return http.Error(err)
	}
}
