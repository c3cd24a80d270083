package request

import (
	"raw_httpd/internal/http/header"
	"raw_httpd/types"
)

// Request is a fully decoded request. It is never handed out partially built.
type Request struct {
	method   types.Method
	path     string
	protocol types.Protocol
	headers  *header.Fields
	body     []byte
}

// New assembles a request from already validated parts. A nil or empty body
// means the request carries no body.
func New(method types.Method, path string, protocol types.Protocol, headerLines []string, body []byte) *Request {
	if len(body) == 0 {
		body = nil
	}
	return &Request{
		method:   method,
		path:     path,
		protocol: protocol,
		headers:  header.Parse(headerLines),
		body:     body,
	}
}

func (r *Request) Method() types.Method     { return r.method }
func (r *Request) Path() string             { return r.path }
func (r *Request) Protocol() types.Protocol { return r.protocol }

// Headers returns the raw header lines in the order they were received.
func (r *Request) Headers() []string { return r.headers.Lines() }

func (r *Request) Value(name string) string { return r.headers.Value(name) }

func (r *Request) Lookup(name string) (string, bool) { return r.headers.Lookup(name) }

func (r *Request) Body() []byte { return r.body }

func (r *Request) HasBody() bool { return r.body != nil }
