package stream

import (
	"errors"
	"io"
	"raw_httpd/internal/http/request"
	"time"
)

// next returns the bytes of the next request. Bytes that arrived past that
// request stay pending for the following cycle. Once the peer has closed, a
// leftover partial request is still handed out so it gets an answer. A request
// that outgrows MaxRequestSize is dropped and reported as ErrTooLarge.
func (hs *stream) next(buf []byte) ([]byte, error) {
	for {
		if n, err := request.Frame(hs.pending); err == nil {
			return hs.take(n), nil
		}
		if len(hs.pending) >= hs.opts.MaxRequestSize {
			hs.pending = nil
			return nil, request.ErrTooLarge
		}

		if hs.readErr == nil {
			n, err := hs.read(buf)
			hs.pending = append(hs.pending, buf[:n]...)
			if n > 0 {
				hs.readErr = err
				continue
			}
			if err == nil {
				err = io.EOF
			}
			hs.readErr = err
		}

		if len(hs.pending) > 0 && errors.Is(hs.readErr, io.EOF) {
			return hs.take(len(hs.pending)), nil
		}
		return nil, hs.readErr
	}
}

func (hs *stream) read(buf []byte) (int, error) {
	if hs.opts.ReadTimeout > 0 {
		if err := hs.conn.SetReadDeadline(time.Now().Add(hs.opts.ReadTimeout)); err != nil {
			return 0, err
		}
	}
	return hs.conn.Read(buf)
}

func (hs *stream) take(n int) []byte {
	frame := hs.pending[:n:n]
	hs.pending = hs.pending[n:]
	if len(hs.pending) == 0 {
		hs.pending = nil
	}
	return frame
}
