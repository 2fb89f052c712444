package netfetch

import (
	"log/slog"

	"github.com/netfetch/netfetch/backend"
)

// Options holds resolved construction-time configuration for a Client.
// Use [New] with Option functions to customize these values.
type Options struct {
	// Policy selects the backend: [PolicyAuto] or a backend name.
	Policy string

	// Credential is an optional "user:password" HTTP auth credential
	// applied to every request.
	Credential string

	// UserAgent is the client identification token sent by the tools.
	UserAgent string

	// Verbose keeps the worker's stderr attached so backend diagnostics
	// reach the operator, and asks the tools for verbose output.
	Verbose bool

	// Logger receives structured diagnostics (worker pid, command line,
	// teardown warnings). Defaults to a discard logger.
	Logger *slog.Logger

	// Backends is the ordered set of dialects, in preference order.
	Backends []backend.Backend
}

// Option configures a Client at construction time.
type Option func(*Options)

// WithPolicy selects the backend: [PolicyAuto] (the default) or an
// explicit backend name such as "wget" or "curl". Empty values are
// ignored. An explicit name is honored without probing; a name matching
// no configured backend fails Open with [ErrUnknownBackend].
func WithPolicy(policy string) Option {
	return func(o *Options) {
		if policy != "" {
			o.Policy = policy
		}
	}
}

// WithCredential sets a "user:password" HTTP auth credential.
func WithCredential(credential string) Option {
	return func(o *Options) {
		o.Credential = credential
	}
}

// WithUserAgent overrides the client identification token.
// Empty values are ignored; the default is [DefaultUserAgent].
func WithUserAgent(ua string) Option {
	return func(o *Options) {
		if ua != "" {
			o.UserAgent = ua
		}
	}
}

// WithVerbose enables elevated diagnostics: the worker's stderr stays
// connected and the tools run with their verbose flags.
func WithVerbose(verbose bool) Option {
	return func(o *Options) {
		o.Verbose = verbose
	}
}

// WithLogger sets the structured logger for diagnostics.
// Nil values are ignored; the default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

// WithBackends replaces the backend set. Order is preference order.
// Empty calls are ignored; the default is [DefaultBackends].
func WithBackends(backends ...backend.Backend) Option {
	return func(o *Options) {
		if len(backends) > 0 {
			o.Backends = backends
		}
	}
}

func resolveOptions(opts ...Option) Options {
	o := Options{
		Policy:    PolicyAuto,
		UserAgent: DefaultUserAgent,
		Logger:    slog.New(slog.DiscardHandler),
		Backends:  DefaultBackends(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
