package http

import (
	"fmt"

	"github.com/indigo-web/minihttp/http"
	"github.com/indigo-web/minihttp/http/status"
	"github.com/indigo-web/minihttp/internal/protocol/http1"
	"github.com/indigo-web/minihttp/router"
	"github.com/indigo-web/minihttp/transport"
	"github.com/rs/zerolog"
)

type Server struct {
	router router.Router
	log    zerolog.Logger
}

func NewServer(r router.Router, log zerolog.Logger) *Server {
	return &Server{
		router: r,
		log:    log,
	}
}

// HandleRequest serves exactly one request: a single read, a single response. A malformed
// request is answered with nothing, so the connection is just closed by the caller. Such
// errors wrap status.ErrCloseConnection. Panics are recovered and reported as errors, so
// they never reach the accept loop.
func (s *Server) HandleRequest(client transport.Client) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: panic: %v", status.ErrInternalServerError, p)
			s.log.Error().Err(err).Msg("recovered from panic")
		}
	}()

	data, err := client.Read()
	if len(data) == 0 {
		if err == nil {
			err = http1.ErrEmptyRequest
		}

		s.log.Debug().Err(err).Msg("nothing was received")
		return fmt.Errorf("%w: read: %w", status.ErrCloseConnection, err)
	}

	if err != nil {
		s.log.Debug().Err(err).Int("size", len(data)).Msg("read failed after receiving data")
	}

	request, err := http1.Parse(data)
	if err != nil {
		s.log.Warn().Err(err).Int("size", len(data)).Msg("malformed request")
		return fmt.Errorf("%w: %w", status.ErrCloseConnection, err)
	}

	request.Remote = client.Remote()
	response := s.onRequest(request)

	_, err = client.Write(http1.Serialize(nil, response))

	fields := response.Expose()
	s.log.Debug().
		Str("method", request.Method).
		Str("path", request.Path).
		Uint16("status", uint16(fields.Code)).
		Int("length", len(fields.Body)).
		Msg("served")

	if err != nil {
		s.log.Error().Err(err).Msg("cannot write response")
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

func (s *Server) onRequest(request *http.Request) *http.Response {
	if response := s.router.OnRequest(request); response != nil {
		return response
	}

	return http.Error(status.ErrInternalServerError)
}
