// Package backendtest provides a reusable behavioral compliance suite
// for [backend.Backend] implementations.
//
// Dialect packages run the suite against their own backend:
//
//	func TestCompliance(t *testing.T) {
//	    backendtest.RunBackendTests(t, func() backend.Backend { return New() })
//	}
//
// The suite verifies the structural argv contract every dialect shares:
// stable single-token name, usable probe invocation, URL as the final
// positional argument, header lines passed through opaquely and in
// order, and per-header slot arithmetic that cannot drift.
package backendtest
