package stream

import (
	"log"
	"raw_httpd/internal/http/request"
	"raw_httpd/internal/http/response"
	"time"
)

// dispatch never fails: decode and handler errors become fallback responses
// and the connection stays open.
func (hs *stream) dispatch(frame []byte) *response.Response {
	req, err := request.Parse(frame)
	if err != nil {
		log.Printf("[%s] failed to parse request: %v", hs.id, err)
		return response.FromError(err)
	}

	resp, err := hs.handler.Handle(req)
	if err != nil {
		log.Printf("[%s] failed to handle %s %s: %v", hs.id, req.Method(), req.Path(), err)
		return response.FromError(err)
	}
	if resp == nil {
		return response.NotFound()
	}
	return resp
}

func (hs *stream) write(resp *response.Response) error {
	if hs.opts.WriteTimeout > 0 {
		if err := hs.conn.SetWriteDeadline(time.Now().Add(hs.opts.WriteTimeout)); err != nil {
			return err
		}
	}
	_, err := hs.conn.Write(resp.Serialize())
	return err
}
