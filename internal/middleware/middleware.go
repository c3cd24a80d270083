package middleware

import (
	"raw_httpd/internal/http/request"
	"raw_httpd/internal/http/response"
	"raw_httpd/internal/http/stream"
)

type RequestMiddleware interface {
	HandleRequest(req *request.Request) error
}

// ResponseMiddleware observes the outcome of a dispatched request. Exactly one
// of resp and err is meaningful; both may be nil when the handler gave up.
type ResponseMiddleware interface {
	HandleResponse(req *request.Request, resp *response.Response, err error)
}

type chain struct {
	next     stream.Handler
	request  []RequestMiddleware
	response []ResponseMiddleware
}

// Wrap returns a Handler running every request middleware in order before
// next, then every response middleware in order after it. A request
// middleware error short-circuits next and is reported as the handler error.
func Wrap(next stream.Handler, request []RequestMiddleware, response []ResponseMiddleware) stream.Handler {
	if len(request) == 0 && len(response) == 0 {
		return next
	}
	return &chain{next: next, request: request, response: response}
}

func (c *chain) Handle(req *request.Request) (resp *response.Response, err error) {
	defer func() {
		for _, m := range c.response {
			m.HandleResponse(req, resp, err)
		}
	}()

	for _, m := range c.request {
		if err = m.HandleRequest(req); err != nil {
			return nil, err
		}
	}
	return c.next.Handle(req)
}
