package middleware

import (
	"log"
	"raw_httpd/internal/http/request"
	"raw_httpd/internal/http/response"
	"sync"
	"time"
)

// AccessLog is both a request and a response middleware: HandleRequest notes
// when dispatch started and HandleResponse writes one line with the outcome
// and the elapsed time.
type AccessLog struct {
	logger *log.Logger
	now    func() time.Time

	mu      sync.Mutex
	started map[*request.Request]time.Time
}

// NewAccessLog writes to logger, or to the standard logger when logger is nil.
func NewAccessLog(logger *log.Logger) *AccessLog {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLog{
		logger:  logger,
		now:     time.Now,
		started: make(map[*request.Request]time.Time),
	}
}

func (a *AccessLog) HandleRequest(req *request.Request) error {
	a.mu.Lock()
	a.started[req] = a.now()
	a.mu.Unlock()
	return nil
}

func (a *AccessLog) HandleResponse(req *request.Request, resp *response.Response, err error) {
	a.mu.Lock()
	start, ok := a.started[req]
	delete(a.started, req)
	a.mu.Unlock()

	var elapsed time.Duration
	if ok {
		elapsed = a.now().Sub(start)
	}

	switch {
	case err != nil:
		resp = response.FromError(err)
		a.logger.Printf("%s %s %s -> %s in %s: %v", req.Method(), req.Path(), req.Protocol(), resp.Status, elapsed, err)
		return
	case resp == nil:
		resp = response.NotFound()
	}
	a.logger.Printf("%s %s %s -> %s (%d bytes) in %s", req.Method(), req.Path(), req.Protocol(), resp.Status, len(resp.Body), elapsed)
}
