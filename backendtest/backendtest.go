package backendtest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfetch/netfetch/backend"
)

const testURL = "https://stream.example.org/live.mp3"

// RunBackendTests runs the behavioral compliance suite for a
// [backend.Backend]. The factory is called once per subtest to ensure
// fresh backend state.
func RunBackendTests(t *testing.T, factory func() backend.Backend) {
	t.Helper()

	t.Run("Name", func(t *testing.T) {
		name := factory().Name()
		require.NotEmpty(t, name, "name must be non-empty")
		assert.NotContains(t, name, " ", "name must be a single token")
	})

	t.Run("ProbeArgs", func(t *testing.T) {
		binary, _ := factory().ProbeArgs()
		require.NotEmpty(t, binary, "probe binary must be non-empty")
	})

	t.Run("EmptyURL", func(t *testing.T) {
		_, args, err := factory().Args(backend.Request{})
		require.Error(t, err, "empty URL must be rejected")
		assert.Nil(t, args, "no partial vector on failure")
	})

	t.Run("URLLast", func(t *testing.T) {
		_, args, err := factory().Args(backend.Request{
			URL:     testURL,
			Headers: []string{"Icy-MetaData: 1"},
		})
		require.NoError(t, err)
		require.NotEmpty(t, args)
		assert.Equal(t, testURL, args[len(args)-1], "URL must be the final positional argument")
	})

	t.Run("HeadersOrdered", func(t *testing.T) {
		headers := []string{
			"Icy-MetaData: 1",
			"Accept: audio/mpeg",
			"Range: bytes=1024-",
		}
		_, args, err := factory().Args(backend.Request{URL: testURL, Headers: headers})
		require.NoError(t, err)

		last := -1
		for _, h := range headers {
			idx := indexContaining(args, h)
			require.GreaterOrEqual(t, idx, 0, "header %q missing from argv", h)
			assert.Greater(t, idx, last, "header %q out of order", h)
			last = idx
		}
	})

	t.Run("HeaderSlotArithmetic", func(t *testing.T) {
		lens := make([]int, 4)
		for n := range lens {
			headers := make([]string, n)
			for i := range headers {
				headers[i] = "X-Test: value"
			}
			_, args, err := factory().Args(backend.Request{URL: testURL, Headers: headers})
			require.NoError(t, err)
			lens[n] = len(args)
		}
		perHeader := lens[1] - lens[0]
		require.Greater(t, perHeader, 0, "each header must occupy at least one slot")
		for n := 2; n < len(lens); n++ {
			assert.Equal(t, lens[0]+n*perHeader, lens[n],
				"vector length must grow by exactly %d slots per header", perHeader)
		}
	})

	t.Run("HeaderOpaque", func(t *testing.T) {
		// Shell metacharacters must survive untouched: argv goes to exec,
		// never through a shell.
		header := `X-Odd: a "b" $(c) ;&|`
		_, args, err := factory().Args(backend.Request{URL: testURL, Headers: []string{header}})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, indexContaining(args, header), 0,
			"header text must pass through unmodified")
	})

	t.Run("UserAgent", func(t *testing.T) {
		const ua = "netfetch-test/1.2.3"
		_, args, err := factory().Args(backend.Request{URL: testURL, UserAgent: ua})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, indexContaining(args, ua), 0,
			"user agent token must appear in argv")
	})
}

// indexContaining returns the index of the first argument containing
// substr, or -1.
func indexContaining(args []string, substr string) int {
	for i, a := range args {
		if strings.Contains(a, substr) {
			return i
		}
	}
	return -1
}
