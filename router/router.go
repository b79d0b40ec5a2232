package router

import (
	"github.com/indigo-web/minihttp/http"
)

// Router maps a decoded request onto a response. It must never return nil.
type Router interface {
	OnRequest(request *http.Request) *http.Response
}
