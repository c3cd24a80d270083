package response

import (
	"raw_httpd/internal/http/header"
	"raw_httpd/types"
)

const (
	TextPlain   = "text/plain"
	OctetStream = "application/octet-stream"
)

// Response is a plain value built in one expression with New. Serializing it
// never modifies it.
type Response struct {
	Protocol types.Protocol
	Status   types.StatusCode
	Headers  []header.Field
	Body     []byte
}

type Option func(*Response)

func WithProtocol(p types.Protocol) Option {
	return func(r *Response) { r.Protocol = p }
}

func WithHeader(f header.Field) Option {
	return func(r *Response) { r.Headers = append(r.Headers, f) }
}

func WithContentType(v string) Option {
	return WithHeader(header.ContentType(v))
}

func WithContentLength(n int) Option {
	return WithHeader(header.ContentLength(n))
}

// WithBody sets the body only. Content-Length stays the caller's business.
func WithBody(b []byte) Option {
	return func(r *Response) { r.Body = b }
}

// WithContent sets the body together with matching Content-Type and
// Content-Length headers.
func WithContent(contentType string, b []byte) Option {
	return func(r *Response) {
		r.Headers = append(r.Headers, header.ContentType(contentType), header.ContentLength(len(b)))
		r.Body = b
	}
}

func New(status types.StatusCode, opts ...Option) *Response {
	r := &Response{
		Protocol: types.HTTP11,
		Status:   status,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func OK() *Response            { return New(types.StatusOK) }
func Created() *Response       { return New(types.StatusCreated) }
func NotFound() *Response      { return New(types.StatusNotFound) }
func InternalError() *Response { return New(types.StatusInternalServerError) }

func (r *Response) HasBody() bool {
	return r.Body != nil
}
