package netfetch

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
)

// Stream is one open transfer: the read end of the worker's stdout pipe
// plus the worker process itself.
//
// The byte stream is the backend tool's stdout verbatim — the raw
// response header block first, then the body, with no separator inserted
// by this package. Callers parse the header block themselves.
//
// Close is the only cancellation mechanism. No timeout is enforced
// anywhere in this package: a stalled worker blocks Read until the
// caller closes the stream from another goroutine.
type Stream struct {
	id     string
	logger *slog.Logger

	mu  sync.Mutex
	r   *os.File  // pipe read end; nil once closed
	cmd *exec.Cmd // nil when no worker is attached

	closeOnce sync.Once
}

var _ io.ReadCloser = (*Stream)(nil)

// ID returns the stream's correlation id, as used in diagnostics.
func (s *Stream) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// PID returns the worker's process id, or 0 when there is no worker
// (the backend could not be executed, or the stream is closed).
func (s *Stream) PID() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cmd == nil || s.cmd.Process == nil {
		return 0
	}
	return s.cmd.Process.Pid
}

// Read performs one blocking read against the pipe's read end. It
// returns when data arrives, when the worker exits and the pipe drains
// (end of stream), or when an unrecoverable read error occurs. Reads
// interrupted by signals are retried by the runtime. There is no
// internal buffering beyond what the pipe itself provides, and Read
// never returns more bytes than len(p).
//
// A nil or closed stream reads (0, io.EOF). End of stream is therefore
// indistinguishable from misuse, from a worker that could not be
// executed, and from a worker that crashed: the worker's exit status is
// deliberately not propagated here. Callers detect transfer failure by
// the absent or truncated response header block.
func (s *Stream) Read(p []byte) (int, error) {
	if s == nil {
		return 0, io.EOF
	}
	s.mu.Lock()
	r := s.r
	s.mu.Unlock()
	if r == nil {
		return 0, io.EOF
	}
	n, err := r.Read(p)
	if err != nil && errors.Is(err, os.ErrClosed) {
		// Closed out from under a blocked Read by Close. Preserve the
		// end-of-stream conflation rather than surfacing a file error.
		return n, io.EOF
	}
	return n, err
}

// Close tears the stream down: the worker receives an unconditional
// kill (the backend tools have no cooperative shutdown protocol), is
// reaped exactly once so no zombie remains, and the pipe's read end is
// released last. The fixed order guarantees neither the process slot
// nor the descriptor leaks even when an intermediate step fails; a reap
// failure is logged as a warning and never aborts the teardown.
//
// Close on a nil stream is a no-op, only the first Close acts, and the
// returned error is always nil.
func (s *Stream) Close() error {
	if s == nil {
		return nil
	}
	s.closeOnce.Do(func() {
		s.mu.Lock()
		cmd := s.cmd
		r := s.r
		s.cmd = nil
		s.r = nil
		s.mu.Unlock()

		if cmd != nil && cmd.Process != nil {
			pid := cmd.Process.Pid
			_ = cmd.Process.Kill()
			if err := cmd.Wait(); err != nil && !isExitError(err) {
				s.logger.Warn("failed to reap worker",
					"stream_id", s.id, "pid", pid, "error", err)
			} else {
				s.logger.Info("network helper finished",
					"stream_id", s.id, "pid", pid)
			}
		}
		if r != nil {
			_ = r.Close()
		}
	})
	return nil
}

// isExitError reports whether err only records a non-zero (or killed)
// worker exit. That is the expected outcome of reaping after a kill,
// not a reap failure.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
