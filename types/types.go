package types

import (
	"fmt"
	"strings"
)

var (
	ErrParseMethod   = fmt.Errorf("failed to parse method")
	ErrParseProtocol = fmt.Errorf("failed to parse HTTP protocol")
)

type Method string

const (
	GET  Method = "GET"
	PUT  Method = "PUT"
	POST Method = "POST"
)

var methods = map[string]Method{
	string(GET):  GET,
	string(PUT):  PUT,
	string(POST): POST,
}

// ParseMethod matches s against the known verbs ignoring case.
func ParseMethod(s string) (Method, error) {
	m, ok := methods[strings.ToUpper(s)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrParseMethod, s)
	}
	return m, nil
}

type Protocol string

const (
	HTTP11 Protocol = "HTTP/1.1"
	HTTP10 Protocol = "HTTP/1.0"
)

// ParseProtocol is case-sensitive.
func ParseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case HTTP11, HTTP10:
		return Protocol(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrParseProtocol, s)
	}
}

type StatusCode int

const (
	StatusOK                  StatusCode = 200
	StatusCreated             StatusCode = 201
	StatusNotFound            StatusCode = 404
	StatusInternalServerError StatusCode = 500
)

var reasons = map[StatusCode]string{
	StatusOK:                  "OK",
	StatusCreated:             "Created",
	StatusNotFound:            "Not Found",
	StatusInternalServerError: "Internal Server Error",
}

func (s StatusCode) Reason() string {
	return reasons[s]
}

// String renders the status the way it appears on the status line, e.g. "404 Not Found".
func (s StatusCode) String() string {
	return fmt.Sprintf("%d %s", int(s), s.Reason())
}
