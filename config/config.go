package config

import (
	"time"
)

type (
	NET struct {
		// ReadBufferSize is the size of the single buffer a request is read into. Requests
		// which don't fit into it are truncated, as exactly one read is made per connection.
		ReadBufferSize int
		// ReadTimeout limits how long the server waits for the request bytes to arrive.
		// Zero disables the deadline.
		ReadTimeout time.Duration
		// AcceptLoopInterruptPeriod controls how often will the Accept() call be interrupted
		// in order to check whether it's time to stop. Defaults to 5 seconds.
		AcceptLoopInterruptPeriod time.Duration
		// Concurrent enables handling every connection in its own goroutine. By default,
		// connections are served strictly one after another.
		Concurrent bool
	}

	Files struct {
		// Directory is the root of the file storage. Empty value disables /files routes
		// completely, so they fall into the not found branch.
		Directory string
	}

	Router struct {
		// StrictSegments makes routes match the first path segment exactly. By default, a
		// route matches if its keyword is contained anywhere in the path, so /filesystem
		// matches files and /user-agent-x matches user-agent.
		StrictSegments bool
	}
)

// Config holds settings used across the server: networking limits, file storage and
// routing behaviour.
//
// Always modify defaults returned via Default() instead of initializing the config
// manually.
type Config struct {
	NET    NET
	Files  Files
	Router Router
}

// Default returns the default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize:            4 * 1024,
			ReadTimeout:               90 * time.Second,
			AcceptLoopInterruptPeriod: 5 * time.Second,
		},
	}
}
