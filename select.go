package netfetch

import (
	"fmt"

	"github.com/netfetch/netfetch/backend"
)

// PolicyAuto probes the configured backends in preference order and
// chooses the first one confirmed present.
const PolicyAuto = "auto"

// selectBackend resolves the client's policy to exactly one backend.
//
// An explicit backend name is honored unconditionally, without probing;
// a missing tool then surfaces later, as an empty stream from the
// launched worker. Under [PolicyAuto], the first backend confirmed
// present wins. When none is confirmed present the first backend is
// still chosen, optimistically: the tool itself reports the failure,
// and a mis-detected probe does not block a working tool.
func (c *Client) selectBackend() (backend.Backend, error) {
	if len(c.opts.Backends) == 0 {
		return nil, fmt.Errorf("%w: no backends configured", ErrUnknownBackend)
	}
	if c.opts.Policy != PolicyAuto {
		for _, b := range c.opts.Backends {
			if b.Name() == c.opts.Policy {
				return b, nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, c.opts.Policy)
	}
	for _, b := range c.opts.Backends {
		if Probe(b) {
			return b, nil
		}
	}
	return c.opts.Backends[0], nil
}
