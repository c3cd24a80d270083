package transport

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"raw_httpd/internal/config"
	"raw_httpd/internal/http/stream"
	"raw_httpd/internal/random"
	"raw_httpd/internal/version"
	"sync"

	"golang.org/x/net/netutil"
)

const connIDLength = 8

type httpServer struct {
	address    string
	port       string
	maxConns   int
	opts       stream.Options
	handler    stream.Handler
	randomizer random.Random

	mu       sync.Mutex
	wg       sync.WaitGroup
	listener net.Listener
	streams  map[stream.Stream]struct{}
	closing  bool
}

func NewHTTPServer(conf config.Config, handler stream.Handler, randomizer random.Random) Transport {
	return &httpServer{
		address:  conf.HTTPAddress(),
		port:     conf.HTTPPort(),
		maxConns: conf.MaxConnections(),
		opts: stream.Options{
			BufferSize:     conf.BufferSize(),
			MaxRequestSize: conf.MaxRequestSize(),
			ReadTimeout:    conf.ReadTimeout(),
			WriteTimeout:   conf.WriteTimeout(),
		},
		handler:    handler,
		randomizer: randomizer,
		streams:    make(map[stream.Stream]struct{}),
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", net.JoinHostPort(ht.address, ht.port))
}

// Serve accepts until the listener is closed. Every connection runs in its own
// goroutine; with MaxConnections set, Accept blocks while the cap is reached.
func (ht *httpServer) Serve(listener net.Listener) error {
	if ht.maxConns > 0 {
		listener = netutil.LimitListener(listener, ht.maxConns)
	}

	ht.mu.Lock()
	if ht.closing {
		ht.mu.Unlock()
		_ = listener.Close()
		return nil
	}
	ht.listener = listener
	ht.mu.Unlock()

	log.Printf("HTTP server %s is starting on %s", version.GetShortVersion(), listener.Addr())
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept connection: %w", err)
		}

		hs := stream.New(ht.connID(conn), conn, ht.handler, ht.opts)
		if !ht.track(hs) {
			_ = hs.Close()
			continue
		}

		go func() {
			defer ht.untrack(hs)
			hs.Serve()
		}()
	}
}

// Shutdown stops accepting and waits for open connections to finish. When ctx
// ends first the remaining connections are closed and ctx.Err is returned.
func (ht *httpServer) Shutdown(ctx context.Context) error {
	ht.mu.Lock()
	ht.closing = true
	var err error
	if ht.listener != nil {
		if cerr := ht.listener.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			err = cerr
		}
	}
	ht.mu.Unlock()

	done := make(chan struct{})
	go func() {
		ht.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
		ht.mu.Lock()
		log.Printf("Closing %d connections still open after shutdown timeout", len(ht.streams))
		for hs := range ht.streams {
			if cerr := hs.Close(); cerr != nil {
				log.Printf("[%s] error closing connection: %v", hs.ID(), cerr)
			}
		}
		ht.mu.Unlock()
		<-done
		return ctx.Err()
	}
}

func (ht *httpServer) track(hs stream.Stream) bool {
	ht.mu.Lock()
	defer ht.mu.Unlock()
	if ht.closing {
		return false
	}
	ht.streams[hs] = struct{}{}
	ht.wg.Add(1)
	return true
}

func (ht *httpServer) untrack(hs stream.Stream) {
	ht.mu.Lock()
	delete(ht.streams, hs)
	ht.mu.Unlock()
	ht.wg.Done()
}

func (ht *httpServer) connID(conn net.Conn) string {
	id, err := ht.randomizer.String(connIDLength)
	if err != nil {
		return conn.RemoteAddr().String()
	}
	return id
}
