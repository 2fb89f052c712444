package cmd

import (
	"bufio"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeaderBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     []string
		wantBody string
	}{
		{
			name:     "crlf terminators",
			input:    "HTTP/1.1 200 OK\r\nContent-Type: audio/mpeg\r\n\r\nbody",
			want:     []string{"HTTP/1.1 200 OK", "Content-Type: audio/mpeg"},
			wantBody: "body",
		},
		{
			name:     "bare lf terminators",
			input:    "ICY 200 OK\nicy-name: Example Radio\n\nmp3data",
			want:     []string{"ICY 200 OK", "icy-name: Example Radio"},
			wantBody: "mp3data",
		},
		{
			name:     "empty block",
			input:    "\r\nbody",
			want:     nil,
			wantBody: "body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := bufio.NewReader(strings.NewReader(tt.input))
			lines, err := readHeaderBlock(br)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)

			body, err := io.ReadAll(br)
			require.NoError(t, err)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}

func TestReadHeaderBlock_TruncatedStream(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty stream", input: ""},
		{name: "headers without blank line", input: "HTTP/1.1 200 OK\r\n"},
		{name: "unterminated line", input: "HTTP/1.1 200"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			br := bufio.NewReader(strings.NewReader(tt.input))
			_, err := readHeaderBlock(br)
			assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}
