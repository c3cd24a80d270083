package router

import (
	"errors"
	"fmt"
	"raw_httpd/internal/filestore"
	"raw_httpd/internal/http/header"
	"raw_httpd/internal/http/request"
	"raw_httpd/internal/http/response"
	"raw_httpd/types"
	"strings"
)

const (
	echoPrefix  = "/echo"
	filesPrefix = "/files"
	userAgent   = "/user-agent"
)

type Router interface {
	Handle(req *request.Request) (*response.Response, error)
}

type router struct {
	store filestore.Store
}

func New(store filestore.Store) Router {
	return &router{store: store}
}

func (rt *router) Handle(req *request.Request) (*response.Response, error) {
	switch req.Method() {
	case types.GET:
		return rt.handleGet(req)
	case types.POST:
		return rt.handlePost(req)
	default:
		return response.NotFound(), nil
	}
}

func (rt *router) handleGet(req *request.Request) (*response.Response, error) {
	path := req.Path()
	if path == "/" {
		return response.OK(), nil
	}
	if path == userAgent {
		return rt.userAgent(req), nil
	}
	if msg, ok := leaf(path, echoPrefix); ok {
		return response.New(types.StatusOK, response.WithContent(response.TextPlain, []byte(msg))), nil
	}
	if name, ok := leaf(path, filesPrefix); ok {
		return rt.readFile(name)
	}
	return response.NotFound(), nil
}

func (rt *router) handlePost(req *request.Request) (*response.Response, error) {
	name, ok := leaf(req.Path(), filesPrefix)
	if !ok {
		return response.NotFound(), nil
	}
	return rt.writeFile(name, req.Body())
}

// userAgent answers the untouched default when the header is missing.
func (rt *router) userAgent(req *request.Request) *response.Response {
	agent, ok := req.Lookup(header.UserAgentName)
	if !ok {
		return response.OK()
	}
	return response.New(types.StatusOK, response.WithContent(response.TextPlain, []byte(agent)))
}

func (rt *router) readFile(name string) (*response.Response, error) {
	data, err := rt.store.Read(name)
	if err != nil {
		if isMiss(err) {
			return response.NotFound(), nil
		}
		return nil, &response.HandlerError{
			Status: types.StatusInternalServerError,
			Err:    fmt.Errorf("read file %q: %w", name, err),
		}
	}
	return response.New(types.StatusOK, response.WithContent(response.OctetStream, data)), nil
}

func (rt *router) writeFile(name string, body []byte) (*response.Response, error) {
	if err := rt.store.Write(name, body); err != nil {
		if isMiss(err) {
			return response.NotFound(), nil
		}
		return nil, &response.HandlerError{
			Status: types.StatusInternalServerError,
			Err:    fmt.Errorf("write file %q: %w", name, err),
		}
	}
	return response.Created(), nil
}

func isMiss(err error) bool {
	return errors.Is(err, filestore.ErrNotFound) || errors.Is(err, filestore.ErrInvalidPath)
}

// leaf returns the single path segment that follows prefix, so "/echo/abc"
// gives "abc" while "/echo", "/echo/" and "/echo/a/b" do not match.
func leaf(path, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(path, prefix+"/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return "", false
	}
	return rest, true
}
