package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"raw_httpd/internal/config"
	"raw_httpd/internal/filestore"
	"raw_httpd/internal/middleware"
	"raw_httpd/internal/random"
	"raw_httpd/internal/router"
	"raw_httpd/internal/transport"
	"raw_httpd/internal/version"
	"syscall"

	"golang.org/x/sync/errgroup"
)

type Bootstrap struct {
	Randomizer random.Random
	Config     config.Config
	Store      filestore.Store
	Router     router.Router
	Transport  transport.Transport
	SignalChan chan os.Signal
}

func New(conf config.Config) (*Bootstrap, error) {
	store, err := filestore.NewDisk(conf.FilesDir())
	if err != nil {
		return nil, err
	}

	randomizer := random.New()
	rt := router.New(store)
	accessLog := middleware.NewAccessLog(nil)
	handler := middleware.Wrap(rt,
		[]middleware.RequestMiddleware{accessLog},
		[]middleware.ResponseMiddleware{accessLog},
	)

	return &Bootstrap{
		Randomizer: randomizer,
		Config:     conf,
		Store:      store,
		Router:     rt,
		Transport:  transport.NewHTTPServer(conf, handler, randomizer),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

func startPprof(ctx context.Context, pprofPort string) error {
	pprofAddr := net.JoinHostPort("localhost", pprofPort)
	srv := &http.Server{Addr: pprofAddr, Handler: http.DefaultServeMux}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	log.Printf("Starting pprof server on http://%s/debug/pprof/", pprofAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("pprof server error: %w", err)
	}
	return nil
}

func (b *Bootstrap) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), b.Config.ShutdownTimeout())
	defer cancel()

	err := b.Transport.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("Shutdown timeout of %s reached, remaining connections were closed", b.Config.ShutdownTimeout())
		return nil
	}
	return err
}

func (b *Bootstrap) Run() error {
	defer func() {
		if err := b.Store.Close(); err != nil {
			log.Printf("failed to close file store: %v", err)
		}
	}()

	ln, err := b.Transport.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := b.Transport.Serve(ln); err != nil {
			return fmt.Errorf("error when serving http server: %w", err)
		}
		return nil
	})

	if b.Config.PprofEnabled() {
		g.Go(func() error {
			return startPprof(gctx, b.Config.PprofPort())
		})
	}

	g.Go(func() error {
		select {
		case sig := <-b.SignalChan:
			log.Printf("Received signal %s, initiating graceful shutdown", sig)
		case <-gctx.Done():
		}
		defer cancel()
		return b.shutdown()
	})

	log.Printf("%s serving files from %s", version.GetVersion(), b.Config.FilesDir())

	return g.Wait()
}
