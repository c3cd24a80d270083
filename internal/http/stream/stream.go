package stream

import (
	"errors"
	"io"
	"log"
	"net"
	"raw_httpd/internal/http/request"
	"raw_httpd/internal/http/response"
	"time"
)

const (
	DefaultBufferSize     = 1024
	DefaultMaxRequestSize = 1 << 20
)

type Handler interface {
	Handle(req *request.Request) (*response.Response, error)
}

type Options struct {
	BufferSize     int
	MaxRequestSize int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Stream runs the read, dispatch, write cycle for one accepted connection
// until the peer closes or an I/O error occurs.
type Stream interface {
	ID() string
	RemoteAddr() net.Addr
	Serve()
	Close() error
}

type stream struct {
	id      string
	conn    net.Conn
	handler Handler
	opts    Options

	pending []byte
	readErr error
}

func New(id string, conn net.Conn, handler Handler, opts Options) Stream {
	if opts.BufferSize <= 0 {
		opts.BufferSize = DefaultBufferSize
	}
	if opts.MaxRequestSize <= 0 {
		opts.MaxRequestSize = DefaultMaxRequestSize
	}
	return &stream{
		id:      id,
		conn:    conn,
		handler: handler,
		opts:    opts,
	}
}

func (hs *stream) ID() string {
	return hs.id
}

func (hs *stream) RemoteAddr() net.Addr {
	return hs.conn.RemoteAddr()
}

func (hs *stream) Serve() {
	defer func() {
		if err := hs.Close(); err != nil {
			log.Printf("[%s] error closing connection: %v", hs.id, err)
		}
	}()

	buf := make([]byte, hs.opts.BufferSize)
	for {
		var resp *response.Response

		frame, err := hs.next(buf)
		switch {
		case errors.Is(err, request.ErrTooLarge):
			log.Printf("[%s] dropping request: %v", hs.id, err)
			resp = response.FromError(err)
		case err != nil:
			if !isClosed(err) {
				log.Printf("[%s] error reading from connection: %v", hs.id, err)
			}
			return
		default:
			resp = hs.dispatch(frame)
		}

		if err = hs.write(resp); err != nil {
			if !isClosed(err) {
				log.Printf("[%s] error writing response: %v", hs.id, err)
			}
			return
		}
	}
}

func (hs *stream) Close() error {
	err := hs.conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func isClosed(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe)
}
