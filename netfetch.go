// Package netfetch streams remote HTTP(S) resources through external
// downloader tools, keeping all network and TLS code out of the calling
// process.
//
// A [Client] delegates each transfer to a worker subprocess running one
// of the supported backends (wget, with fallback to curl) and hands the
// worker's stdout back as a [Stream]. The stream carries the raw
// response header block followed by the body, with no separator inserted
// here; the caller parses headers itself.
//
// Proxying is delegated wholesale to the http_proxy, https_proxy and
// ftp_proxy environment variables and the tools' own credential stores,
// which the worker inherits untouched.
//
// # Quick Start
//
//	client := netfetch.New(netfetch.WithCredential("user:password"))
//	stream, err := client.Open("https://radio.example/live", []string{"Icy-MetaData: 1"})
//	if err != nil { log.Fatal(err) }
//	defer stream.Close()
//	io.Copy(dst, stream)
package netfetch

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"

	"github.com/netfetch/netfetch/backend"
	"github.com/netfetch/netfetch/backend/curl"
	"github.com/netfetch/netfetch/backend/wget"
)

// Product and Version identify this client in the User-Agent token sent
// by the backend tools.
const (
	Product = "netfetch"
	Version = "0.4.0"
)

// DefaultUserAgent is the client identification sent unless overridden
// with [WithUserAgent].
const DefaultUserAgent = Product + "/" + Version

// DefaultBackends returns the supported dialects in preference order:
// wget first, curl second. The slice is freshly allocated on every call.
func DefaultBackends() []backend.Backend {
	return []backend.Backend{wget.New(), curl.New()}
}

// Client opens streams through a configured backend policy.
// The zero Client is not usable; construct one with [New].
// A Client is safe for concurrent use: each Open yields an independent
// pipe/worker pair, and the only shared state is the process-wide probe
// cache, whose writes are idempotent.
type Client struct {
	opts Options
}

// New creates a Client with the given options.
func New(opts ...Option) *Client {
	return &Client{opts: resolveOptions(opts...)}
}

// Open starts one worker for url and returns its byte stream.
//
// headers are extra request header lines ("Name: value"), handed to the
// tool in order. The returned stream is the tool's stdout verbatim: the
// raw response header block, then the body.
//
// Configuration errors (unknown policy) and resource errors (argv
// construction or pipe creation failure) fail Open before a worker
// exists. A backend binary that cannot be executed does not fail Open:
// as in the fork+exec model this package wraps, that failure is only
// observable as an immediately empty stream. It is logged at warning
// level.
func (c *Client) Open(url string, headers []string) (*Stream, error) {
	b, err := c.selectBackend()
	if err != nil {
		return nil, err
	}

	binary, args, err := b.Args(backend.Request{
		URL:        url,
		Headers:    headers,
		UserAgent:  c.opts.UserAgent,
		Credential: c.opts.Credential,
		Verbose:    c.opts.Verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("netfetch: build %s command: %w", b.Name(), err)
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("netfetch: create pipe: %w", err)
	}

	cmd := exec.Command(binary, args...)
	cmd.Stdout = w
	// Stdin stays nil so the worker reads the null device and can never
	// block waiting for input. Stderr stays on the null device unless
	// elevated diagnostics are requested.
	if c.opts.Verbose {
		cmd.Stderr = os.Stderr
	}

	s := &Stream{
		id:     uuid.NewString(),
		logger: c.opts.Logger,
		r:      r,
	}

	startErr := cmd.Start()
	// The worker holds the only write end now; once it exits, reads on
	// s.r reach end-of-stream.
	_ = w.Close()
	if startErr != nil {
		c.opts.Logger.Warn("cannot execute backend",
			"stream_id", s.id, "backend", b.Name(), "binary", binary, "error", startErr)
		return s, nil
	}
	s.cmd = cmd

	c.opts.Logger.Info("started network helper",
		"stream_id", s.id, "backend", b.Name(), "pid", cmd.Process.Pid)
	c.opts.Logger.Debug("helper command line",
		"stream_id", s.id, "argv", append([]string{binary}, args...))
	return s, nil
}
