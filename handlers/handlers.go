// Package handlers contains the route table of the server.
package handlers

import (
	"github.com/indigo-web/minihttp/config"
	"github.com/indigo-web/minihttp/filestore"
	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/codec"
	"github.com/indigo-web/minihttp/http/method"
	"github.com/indigo-web/minihttp/http/mime"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/router/inbuilt"
	"github.com/indigo-web/utils/uf"
	"github.com/rs/zerolog"
)

// ErrNoUserAgent is returned when /user-agent is requested without the User-Agent header.
var ErrNoUserAgent = status.NewError(status.BadRequest, "missing user-agent header")

const (
	echoKeyword      = "echo"
	userAgentKeyword = "user-agent"
	filesKeyword     = "files"
	// argSegment is the index of the path segment carrying the route argument, as in
	// /echo/{text} and /files/{filename}.
	argSegment = 2
)

type handlers struct {
	store *filestore.Store
	// codecs are negotiated against Accept-Encoding, falling back to identity.
	codecs []codec.Codec
	// binary passes file contents through verbatim.
	binary codec.Codec
	log    zerolog.Logger
}

// New builds the router. Keywords are matched as substrings of the path unless
// cfg.Router.StrictSegments is set. The files routes are registered only if the store
// is enabled, so otherwise they fall through to 404.
func New(cfg *config.Config, store *filestore.Store, log zerolog.Logger) *inbuilt.Router {
	h := handlers{
		store:  store,
		codecs: []codec.Codec{codec.NewGZIP()},
		binary: codec.NewIdentity(),
		log:    log,
	}

	match := inbuilt.Contains
	if cfg.Router.StrictSegments {
		match = inbuilt.Segment
	}

	r := inbuilt.New().
		NotFound(h.NotFound).
		MethodNotAllowed(h.MethodNotAllowed).
		Get(inbuilt.Exact("/"), h.Index).
		Get(match(echoKeyword), h.Echo).
		Get(match(userAgentKeyword), h.UserAgent)

	if store.Enabled() {
		r.Get(match(filesKeyword), h.ReadFile).
			Post(match(filesKeyword), h.WriteFile)
	}

	return r
}

func (h handlers) Index(*http.Request) *http.Response {
	return http.Respond(status.OK)
}

// Echo responds with the path argument, compressed if the client accepts any of the
// supported codings.
func (h handlers) Echo(request *http.Request) *http.Response {
	text, _ := request.Segment(argSegment)
	c := codec.Negotiate(request.Headers.Value("accept-encoding"), h.codecs...)

	encoded, err := codec.Encode(c, uf.S2B(text))
	if err != nil {
		h.log.Error().Err(err).Str("coding", c.Token()).Msg("cannot encode echo body")
		return http.Error(status.ErrInternalServerError)
	}

	response := http.NewResponse().ContentType(mime.Plain)
	if c.Token() != codec.IdentityToken {
		response.ContentEncoding(c.Token())
	}

	return response.Bytes(encoded)
}

func (h handlers) UserAgent(request *http.Request) *http.Response {
	userAgent, found := request.Headers.Get("user-agent")
	if !found {
		h.log.Debug().Str("path", request.Path).Msg("no user-agent header")
		return http.Error(ErrNoUserAgent)
	}

	return http.NewResponse().
		ContentType(mime.Plain).
		String(userAgent)
}

func (h handlers) ReadFile(request *http.Request) *http.Response {
	filename, _ := request.Segment(argSegment)
	data, err := h.store.Read(filename)
	if err != nil {
		h.log.Debug().Err(err).Str("file", filename).Msg("cannot read file")
		return http.Error(err)
	}

	encoded, err := codec.Encode(h.binary, data)
	if err != nil {
		h.log.Error().Err(err).Str("file", filename).Msg("cannot encode file contents")
		return http.Error(status.ErrInternalServerError)
	}

	return http.NewResponse().
		ContentType(mime.OctetStream).
		Bytes(encoded)
}

func (h handlers) WriteFile(request *http.Request) *http.Response {
	filename, _ := request.Segment(argSegment)
	if err := h.store.Write(filename, uf.S2B(request.Body)); err != nil {
		h.log.Debug().Err(err).Str("file", filename).Msg("cannot write file")
		return http.Error(err)
	}

	return http.Respond(status.Created)
}

func (h handlers) NotFound(request *http.Request) *http.Response {
	h.log.Debug().
		Stringer("method", method.Parse(request.Method)).
		Str("path", request.Path).
		Msg("no route matched")

	return http.Error(status.ErrNotFound)
}

func (h handlers) MethodNotAllowed(request *http.Request) *http.Response {
	h.log.Debug().Str("method", request.Method).Msg("unsupported method")
	return http.Error(status.ErrMethodNotAllowed)
}
