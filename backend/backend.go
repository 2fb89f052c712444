package backend

// Request is one logical transfer, already assembled by the caller.
//
// Header lines and the URL are passed through opaquely: arguments reach
// the tool via exec, never via a command shell, so no quoting or
// sanitization is applied here. The only contract on the strings is that
// Headers are well-formed "Name: value" lines and URL is a well-formed
// URL.
type Request struct {
	// URL of the resource to stream.
	URL string

	// Headers are extra request header lines, in caller order.
	Headers []string

	// UserAgent is the client identification token, e.g. "netfetch/0.4.0".
	// When empty, the tool's own default agent string is used.
	UserAgent string

	// Credential is an optional "user:password" HTTP auth credential.
	// Empty means unauthenticated (or whatever the tool finds in its own
	// credential store, such as .netrc).
	Credential string

	// Verbose asks the tool for diagnostic output on stderr instead of
	// running quietly. It never changes what is written to stdout.
	Verbose bool
}

// Backend describes one external downloader dialect: how to probe for
// the tool's presence and how to translate a Request into its command
// line.
type Backend interface {
	// Name identifies the backend in selection policies and in the probe
	// cache. It is the dialect name ("wget"), not the binary path.
	Name() string

	// ProbeArgs returns a cheap presence-check invocation, typically
	// "<tool> --version". The invocation must terminate on its own and
	// exit 0 iff the tool is usable.
	ProbeArgs() (binary string, args []string)

	// Args translates a request into the dialect's command line. The
	// returned args do not include the binary itself.
	//
	// Every dialect must direct the response to stdout with the raw
	// response header block included ahead of the body, and must place
	// the URL as the final positional argument. Args returns an error
	// and no partial vector when the request cannot be expressed.
	Args(req Request) (binary string, args []string, err error)
}
