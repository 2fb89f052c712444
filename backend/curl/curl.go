// Package curl implements the curl dialect of the netfetch backend
// contract.
//
// curl takes flag name and value as separate arguments: each header line
// costs two slots, and the auth credential is passed whole to --user.
package curl

import (
	"errors"

	"github.com/netfetch/netfetch/backend"
)

const defaultBinary = "curl"

// Backend builds curl command lines.
type Backend struct {
	binary string
}

var _ backend.Backend = (*Backend)(nil)

// Option configures a Backend at construction time.
type Option func(*Backend)

// WithBinary overrides the curl binary path.
// Empty values are ignored; the default is "curl".
func WithBinary(path string) Option {
	return func(b *Backend) {
		if path != "" {
			b.binary = path
		}
	}
}

// New creates a curl backend with the given options.
func New(opts ...Option) *Backend {
	b := &Backend{binary: defaultBinary}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements backend.Backend. It is always "curl", regardless of
// any binary override.
func (b *Backend) Name() string { return "curl" }

// ProbeArgs returns the version invocation used to test for curl.
func (b *Backend) ProbeArgs() (string, []string) {
	return b.binary, []string{"--version"}
}

// Args implements backend.Backend.
//
// Layout: verbosity flags, header dump, agent, header lines in order,
// auth, URL last. --dump-header - writes the raw response header block
// to stdout ahead of the body.
func (b *Backend) Args(req backend.Request) (string, []string, error) {
	if req.URL == "" {
		return "", nil, errors.New("curl: empty URL")
	}
	var args []string
	if req.Verbose {
		args = append(args, "--verbose")
	} else {
		args = append(args, "--silent", "--show-error")
	}
	args = append(args, "--dump-header", "-")
	if req.UserAgent != "" {
		args = append(args, "--user-agent", req.UserAgent)
	}
	for _, h := range req.Headers {
		args = append(args, "--header", h)
	}
	if req.Credential != "" {
		args = append(args, "--user", req.Credential)
	}
	args = append(args, req.URL)
	return b.binary, args, nil
}
