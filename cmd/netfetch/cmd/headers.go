package cmd

import (
	"io"
	"strings"
)

// lineReader is the subset of bufio.Reader readHeaderBlock needs.
type lineReader interface {
	ReadString(delim byte) (string, error)
}

// readHeaderBlock consumes the raw response header block from r and
// returns its lines without terminators; the body starts at the
// reader's position afterwards. The block ends at the first empty line.
// Both CRLF and bare LF terminators are accepted.
//
// An end of stream before the blank line means the worker produced no
// (complete) response — typically a missing backend tool or a failed
// transfer — and is reported as io.ErrUnexpectedEOF.
func readHeaderBlock(r lineReader) ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}
		trimmed := strings.TrimRight(line, "\r\n")
		if trimmed == "" {
			return lines, nil
		}
		lines = append(lines, trimmed)
	}
}
