// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orbs-network/govnr"
	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/orbs-counter-go/instrumentation/logfields"
	"github.com/orbs-network/orbs-counter-go/instrumentation/metric"
	"github.com/orbs-network/orbs-counter-go/services/display"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

var LogTag = log.String("adapter", "http-server")

type CounterDisplay interface {
	ReadCounter(ctx context.Context) display.Result
	IncrementByOne(ctx context.Context) display.Result
	IncrementByN(ctx context.Context, text string) display.Result
	LastKnown() (uint32, bool)
}

type HttpServer struct {
	httpServer     *http.Server
	logger         log.Logger
	display        CounterDisplay
	metricRegistry metric.Registry
	config         config.HttpServerConfig

	port      int
	startTime time.Time
	closed    chan struct{}

	metrics struct {
		requests   *metric.Rate
		badInputs  *metric.Gauge
		failures   *metric.Gauge
		handleTime *metric.Histogram
	}
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlive(true)
	if err != nil {
		return nil, err
	}
	err = tc.SetKeepAlivePeriod(35 * time.Second)
	if err != nil {
		return nil, err
	}
	return tc, nil
}

func NewHttpServer(cfg config.HttpServerConfig, logger log.Logger, counterDisplay CounterDisplay, metricRegistry metric.Registry) (*HttpServer, error) {
	server := &HttpServer{
		logger:         logger.WithTags(LogTag),
		display:        counterDisplay,
		metricRegistry: metricRegistry,
		config:         cfg,
		startTime:      time.Now(),
		closed:         make(chan struct{}),
	}
	server.metrics.requests = metricRegistry.NewRate("HttpServer.Requests.PerSecond")
	server.metrics.badInputs = metricRegistry.NewGauge("HttpServer.BadRequests.Count")
	server.metrics.failures = metricRegistry.NewGauge("HttpServer.FailedRequests.Count")
	server.metrics.handleTime = metricRegistry.NewLatency("HttpServer.HandleTime.Millis", time.Minute)

	// listen before serving so a bad address fails here and not in the background
	listener, err := net.Listen("tcp", cfg.HttpAddress())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to start http server on %s", cfg.HttpAddress())
	}

	server.port = listener.Addr().(*net.TCPAddr).Port
	server.httpServer = &http.Server{
		Handler: server.createRouter(),
	}

	govnr.Once(logfields.GovnrErrorer(server.logger), func() {
		defer close(server.closed)
		if err := server.httpServer.Serve(tcpKeepAliveListener{listener.(*net.TCPListener)}); err != nil && err != http.ErrServerClosed {
			server.logger.Error("http server stopped", log.Error(err))
		}
	})

	server.logger.Info("started http server", log.String("address", cfg.HttpAddress()), log.Int("port", server.port))

	return server, nil
}

func (s *HttpServer) Port() int {
	return s.port
}

func (s *HttpServer) GracefulShutdown(shutdownContext context.Context) {
	if err := s.httpServer.Shutdown(shutdownContext); err != nil {
		s.logger.Error("failed to stop http server gracefully", log.Error(err))
	}
}

func (s *HttpServer) WaitUntilShutdown(shutdownContext context.Context) {
	select {
	case <-s.closed:
	case <-shutdownContext.Done():
		s.logger.Info("http server did not stop in time", log.Error(shutdownContext.Err()))
	}
}

func (s *HttpServer) createRouter() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withCORS)
	router.Use(s.withTrace)

	router.MethodNotAllowed(s.methodNotAllowed)
	router.NotFound(s.notFound)

	router.Post("/readCounter", s.readCounter)
	router.Post("/incrementByOne", s.incrementByOne)
	router.Post("/incrementByN", s.incrementByN)

	router.Get("/", s.index)
	router.Get("/status", s.getStatus)
	router.Get("/metrics", s.dumpMetrics)
	router.Get("/metrics.prometheus", s.dumpPrometheusMetrics)
	router.Get("/robots.txt", s.robots)

	if s.config.Profiling() {
		registerPprof(router)
	}

	return router
}

func registerPprof(router chi.Router) {
	router.HandleFunc("/debug/pprof/", pprof.Index)
	router.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("/debug/pprof/profile", pprof.Profile)
	router.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("/debug/pprof/trace", pprof.Trace)
	router.Handle("/debug/pprof/{profile}", http.HandlerFunc(pprof.Index))
}

// Allows handler to be called via XHR requests from any host
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Allow-Methods", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
