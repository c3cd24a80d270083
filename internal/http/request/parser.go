package request

import (
	"bytes"
	"fmt"
	"raw_httpd/internal/http/header"
	"raw_httpd/types"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse decodes one request from data. Everything after the blank line that
// closes the header block is the body.
func Parse(data []byte) (*Request, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: missing start line", ErrInvalidFormat)
	}

	startLine, off, _ := nextLine(data, 0)
	method, path, protocol, err := parseStartLine(string(startLine))
	if err != nil {
		return nil, err
	}

	lines, off, err := headerLines(data, off)
	if err != nil {
		return nil, err
	}

	var body []byte
	if off < len(data) {
		body = make([]byte, len(data)-off)
		copy(body, data[off:])
	}

	return New(method, path, protocol, lines, body), nil
}

// Frame reports how many leading bytes of data form the first complete
// request. A valid Content-Length bounds the body. Without one, a POST or PUT
// takes every buffered byte after the head as its body and any other method
// ends at the head. It returns ErrIncomplete while more bytes are needed. A
// start line that can never become valid claims everything up to the next
// blank line, or the whole buffer when there is none, so that Parse reports
// the error.
func Frame(data []byte) (int, error) {
	startLine, off, terminated := nextLine(data, 0)
	if !terminated {
		return 0, ErrIncomplete
	}

	method, _, _, err := parseStartLine(string(startLine))
	if err != nil {
		if _, headEnd, herr := headerLines(data, off); herr == nil {
			return headEnd, nil
		}
		return len(data), nil
	}

	lines, headEnd, err := headerLines(data, off)
	if err != nil {
		return 0, ErrIncomplete
	}

	length, ok := contentLength(lines)
	if !ok {
		if method == types.POST || method == types.PUT {
			return len(data), nil
		}
		return headEnd, nil
	}

	n := headEnd + length
	if n > len(data) {
		return 0, ErrIncomplete
	}
	return n, nil
}

func parseStartLine(line string) (types.Method, string, types.Protocol, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 3 {
		return "", "", "", fmt.Errorf("%w: start line needs method, path and version", ErrInvalidFormat)
	}

	method, err := types.ParseMethod(tokens[0])
	if err != nil {
		return "", "", "", err
	}

	protocol, err := types.ParseProtocol(tokens[2])
	if err != nil {
		return "", "", "", err
	}

	return method, tokens[1], protocol, nil
}

// headerLines collects lines from off up to the blank line and returns the
// offset just past that blank line.
func headerLines(data []byte, off int) ([]string, int, error) {
	var lines []string
	for {
		if off >= len(data) {
			return nil, 0, fmt.Errorf("%w: missing header terminator", ErrInvalidFormat)
		}
		var line []byte
		line, off, _ = nextLine(data, off)
		if len(line) == 0 {
			return lines, off, nil
		}
		lines = append(lines, string(line))
	}
}

// nextLine returns the line starting at off without its terminator, the offset
// just past it and whether a '\n' ended it. Only a "\r\n" pair loses its '\r'.
func nextLine(data []byte, off int) ([]byte, int, bool) {
	i := bytes.IndexByte(data[off:], '\n')
	if i == -1 {
		return data[off:], len(data), false
	}
	line := bytes.TrimSuffix(data[off:off+i], []byte{'\r'})
	return line, off + i + 1, true
}

// contentLength reports the declared body length, or false when the header is
// missing or not a non-negative integer.
func contentLength(lines []string) (int, bool) {
	raw, ok := header.Parse(lines).Lookup(header.ContentLengthName)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
