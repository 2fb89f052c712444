// Package wget implements the wget dialect of the netfetch backend
// contract.
//
// wget favors combined --flag=value tokens: each header line and each
// half of the auth credential collapses into a single argument.
package wget

import (
	"errors"
	"strings"

	"github.com/netfetch/netfetch/backend"
)

const defaultBinary = "wget"

// Backend builds wget command lines.
type Backend struct {
	binary string
}

var _ backend.Backend = (*Backend)(nil)

// Option configures a Backend at construction time.
type Option func(*Backend)

// WithBinary overrides the wget binary path.
// Empty values are ignored; the default is "wget".
func WithBinary(path string) Option {
	return func(b *Backend) {
		if path != "" {
			b.binary = path
		}
	}
}

// New creates a wget backend with the given options.
func New(opts ...Option) *Backend {
	b := &Backend{binary: defaultBinary}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name implements backend.Backend. It is always "wget", regardless of
// any binary override.
func (b *Backend) Name() string { return "wget" }

// ProbeArgs returns the version invocation used to test for wget.
func (b *Backend) ProbeArgs() (string, []string) {
	return b.binary, []string{"--version"}
}

// Args implements backend.Backend.
//
// Layout: output flags, agent, header lines in order, auth, URL last.
// --save-headers puts the raw response header block on stdout ahead of
// the body. A credential without a ':' separator cannot be split into
// --user/--password and is silently dropped, leaving auth to wget's own
// .netrc lookup.
func (b *Backend) Args(req backend.Request) (string, []string, error) {
	if req.URL == "" {
		return "", nil, errors.New("wget: empty URL")
	}
	args := []string{"--output-document=-"}
	if !req.Verbose {
		args = append(args, "--quiet")
	}
	args = append(args, "--save-headers")
	if req.UserAgent != "" {
		args = append(args, "--user-agent="+req.UserAgent)
	}
	for _, h := range req.Headers {
		args = append(args, "--header="+h)
	}
	if user, password, ok := strings.Cut(req.Credential, ":"); ok {
		args = append(args, "--user="+user, "--password="+password)
	}
	args = append(args, req.URL)
	return b.binary, args, nil
}
