package netfetch

import (
	"os/exec"
	"sync"

	"github.com/netfetch/netfetch/backend"
)

// probeResults memoizes backend availability for the life of the
// process, keyed by backend name. Concurrent redundant probes are
// tolerated: the stored values are idempotent booleans, so no mutual
// exclusion is needed beyond what sync.Map provides.
var probeResults sync.Map

// Probe reports whether b's tool can be executed, caching the result
// per backend name for the life of the process.
//
// Present means the probe invocation ran with all three standard streams
// on the null device and exited 0; any spawn or exec failure counts as
// absent. Explicit backend policies never call Probe — with them, a
// missing tool surfaces only as an empty stream after Open.
func Probe(b backend.Backend) bool {
	if v, ok := probeResults.Load(b.Name()); ok {
		return v.(bool)
	}
	present := runProbe(b.ProbeArgs())
	probeResults.Store(b.Name(), present)
	return present
}

// runProbe executes the probe invocation. Stdin, Stdout and Stderr are
// left nil so os/exec connects all three to the null device.
func runProbe(binary string, args []string) bool {
	return exec.Command(binary, args...).Run() == nil
}

// resetProbeCache clears memoized probe results. Test hook.
func resetProbeCache() {
	probeResults.Range(func(k, _ any) bool {
		probeResults.Delete(k)
		return true
	})
}
