package curl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfetch/netfetch/backend"
	"github.com/netfetch/netfetch/backendtest"
)

const (
	testURL = "https://radio.example.com/stream.ogg"
	testUA  = "netfetch/0.4.0"
)

func TestCompliance(t *testing.T) {
	backendtest.RunBackendTests(t, func() backend.Backend { return New() })
}

func TestArgs(t *testing.T) {
	tests := []struct {
		name string
		req  backend.Request
		want []string
	}{
		{
			name: "minimal",
			req:  backend.Request{URL: testURL},
			want: []string{
				"--silent", "--show-error",
				"--dump-header", "-",
				testURL,
			},
		},
		{
			name: "verbose replaces silent",
			req:  backend.Request{URL: testURL, Verbose: true},
			want: []string{
				"--verbose",
				"--dump-header", "-",
				testURL,
			},
		},
		{
			name: "user agent is two tokens",
			req:  backend.Request{URL: testURL, UserAgent: testUA},
			want: []string{
				"--silent", "--show-error",
				"--dump-header", "-",
				"--user-agent", testUA,
				testURL,
			},
		},
		{
			name: "single header is two tokens",
			req: backend.Request{
				URL:     testURL,
				Headers: []string{"Icy-MetaData: 1"},
			},
			want: []string{
				"--silent", "--show-error",
				"--dump-header", "-",
				"--header", "Icy-MetaData: 1",
				testURL,
			},
		},
		{
			name: "many headers keep order",
			req: backend.Request{
				URL: testURL,
				Headers: []string{
					"Icy-MetaData: 1",
					"Accept: audio/ogg",
				},
			},
			want: []string{
				"--silent", "--show-error",
				"--dump-header", "-",
				"--header", "Icy-MetaData: 1",
				"--header", "Accept: audio/ogg",
				testURL,
			},
		},
		{
			name: "credential passed whole",
			req:  backend.Request{URL: testURL, Credential: "alice:s3cret"},
			want: []string{
				"--silent", "--show-error",
				"--dump-header", "-",
				"--user", "alice:s3cret",
				testURL,
			},
		},
		{
			name: "credential without separator still passed",
			req:  backend.Request{URL: testURL, Credential: "alice"},
			want: []string{
				"--silent", "--show-error",
				"--dump-header", "-",
				"--user", "alice",
				testURL,
			},
		},
		{
			name: "everything at once",
			req: backend.Request{
				URL:        testURL,
				Headers:    []string{"Icy-MetaData: 1"},
				UserAgent:  testUA,
				Credential: "alice:s3cret",
			},
			want: []string{
				"--silent", "--show-error",
				"--dump-header", "-",
				"--user-agent", testUA,
				"--header", "Icy-MetaData: 1",
				"--user", "alice:s3cret",
				testURL,
			},
		},
	}

	b := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binary, args, err := b.Args(tt.req)
			require.NoError(t, err)
			assert.Equal(t, defaultBinary, binary)
			assert.Equal(t, tt.want, args)
		})
	}
}

func TestArgs_EmptyURL(t *testing.T) {
	_, args, err := New().Args(backend.Request{})
	require.Error(t, err)
	assert.Nil(t, args)
}

func TestWithBinary(t *testing.T) {
	b := New(WithBinary("/usr/local/bin/curl"))

	binary, _ := b.ProbeArgs()
	assert.Equal(t, "/usr/local/bin/curl", binary)

	binary, _, err := b.Args(backend.Request{URL: testURL})
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/curl", binary)
	assert.Equal(t, "curl", b.Name(), "name must stay the dialect name")
}
