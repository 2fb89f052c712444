package wget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netfetch/netfetch/backend"
	"github.com/netfetch/netfetch/backendtest"
)

const (
	testURL = "http://radio.example.com:8000/stream"
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
				"--output-document=-",
				"--quiet",
				"--save-headers",
				testURL,
			},
		},
		{
			name: "verbose drops quiet",
			req:  backend.Request{URL: testURL, Verbose: true},
			want: []string{
				"--output-document=-",
				"--save-headers",
				testURL,
			},
		},
		{
			name: "user agent",
			req:  backend.Request{URL: testURL, UserAgent: testUA},
			want: []string{
				"--output-document=-",
				"--quiet",
				"--save-headers",
				"--user-agent=" + testUA,
				testURL,
			},
		},
		{
			name: "single header",
			req: backend.Request{
				URL:     testURL,
				Headers: []string{"Icy-MetaData: 1"},
			},
			want: []string{
				"--output-document=-",
				"--quiet",
				"--save-headers",
				"--header=Icy-MetaData: 1",
				testURL,
			},
		},
		{
			name: "many headers keep order",
			req: backend.Request{
				URL: testURL,
				Headers: []string{
					"Icy-MetaData: 1",
					"Accept: audio/mpeg",
					"Range: bytes=0-",
				},
			},
			want: []string{
				"--output-document=-",
				"--quiet",
				"--save-headers",
				"--header=Icy-MetaData: 1",
				"--header=Accept: audio/mpeg",
				"--header=Range: bytes=0-",
				testURL,
			},
		},
		{
			name: "credential splits into user and password",
			req:  backend.Request{URL: testURL, Credential: "alice:s3cret"},
			want: []string{
				"--output-document=-",
				"--quiet",
				"--save-headers",
				"--user=alice",
				"--password=s3cret",
				testURL,
			},
		},
		{
			name: "password may contain colons",
			req:  backend.Request{URL: testURL, Credential: "alice:s3:cr:et"},
			want: []string{
				"--output-document=-",
				"--quiet",
				"--save-headers",
				"--user=alice",
				"--password=s3:cr:et",
				testURL,
			},
		},
		{
			name: "credential without separator is dropped",
			req:  backend.Request{URL: testURL, Credential: "alice"},
			want: []string{
				"--output-document=-",
				"--quiet",
				"--save-headers",
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
				"--output-document=-",
				"--quiet",
				"--save-headers",
				"--user-agent=" + testUA,
				"--header=Icy-MetaData: 1",
				"--user=alice",
				"--password=s3cret",
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
	b := New(WithBinary("/opt/gnu/bin/wget"))

	binary, _ := b.ProbeArgs()
	assert.Equal(t, "/opt/gnu/bin/wget", binary)

	binary, _, err := b.Args(backend.Request{URL: testURL})
	require.NoError(t, err)
	assert.Equal(t, "/opt/gnu/bin/wget", binary)
	assert.Equal(t, "wget", b.Name(), "name must stay the dialect name")
}

func TestWithBinary_EmptyIgnored(t *testing.T) {
	binary, _ := New(WithBinary("")).ProbeArgs()
	assert.Equal(t, defaultBinary, binary)
}
