// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	"io/ioutil"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/orbs-network/orbs-counter-go/instrumentation/trace"
	"github.com/orbs-network/orbs-counter-go/services/display"
	"github.com/orbs-network/scribe/log"
)

const maxRequestBodySize = 1 << 16

// result is a decimal string and is empty whenever error is set
type counterResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// increment is kept raw so the display service decides what a valid increment is
type incrementByNRequest struct {
	Increment json.RawMessage `json:"increment"`
}

func (s *HttpServer) withTrace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := trace.NewFromRequest(r.Context(), r)
		if tracingContext, ok := trace.FromContext(ctx); ok {
			w.Header().Set(trace.RequestIdHeader, tracingContext.RequestId())
		}

		start := time.Now()
		s.metrics.requests.Measure(1)
		next.ServeHTTP(w, r.WithContext(ctx))
		s.metrics.handleTime.RecordSince(start)
	})
}

func (s *HttpServer) readCounter(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("http server received readCounter", trace.LogFieldFrom(r.Context()))
	s.writeResult(w, r, s.display.ReadCounter(r.Context()))
}

func (s *HttpServer) incrementByOne(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("http server received incrementByOne", trace.LogFieldFrom(r.Context()))
	s.writeResult(w, r, s.display.IncrementByOne(r.Context()))
}

func (s *HttpServer) incrementByN(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err != nil {
		s.writeBadRequest(w, r, "http request body could not be read", err)
		return
	}

	var request incrementByNRequest
	if err := json.Unmarshal(body, &request); err != nil {
		s.writeBadRequest(w, r, "http request body is not a valid incrementByN request", err)
		return
	}

	s.logger.Info("http server received incrementByN", trace.LogFieldFrom(r.Context()), log.String("increment", string(request.Increment)))
	s.writeResult(w, r, s.display.IncrementByN(r.Context(), string(request.Increment)))
}

func (s *HttpServer) writeResult(w http.ResponseWriter, r *http.Request, result display.Result) {
	code := http.StatusOK
	if result.Err != nil {
		if display.IsInvalidInput(result.Err) {
			code = http.StatusBadRequest
			s.metrics.badInputs.Inc()
		} else {
			code = http.StatusBadGateway
			s.metrics.failures.Inc()
		}
	}

	s.writeJson(w, r, code, counterResponse{Result: result.String(), Error: result.ErrorMessage()})
}

func (s *HttpServer) writeBadRequest(w http.ResponseWriter, r *http.Request, message string, err error) {
	s.logger.Info(message, trace.LogFieldFrom(r.Context()), log.Error(err))
	s.metrics.badInputs.Inc()
	s.writeJson(w, r, http.StatusBadRequest, counterResponse{Error: message})
}

func (s *HttpServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeJson(w, r, http.StatusMethodNotAllowed, counterResponse{Error: r.Method + " is not allowed on " + r.URL.Path})
}

func (s *HttpServer) notFound(w http.ResponseWriter, r *http.Request) {
	s.writeJson(w, r, http.StatusNotFound, counterResponse{Error: r.URL.Path + " not found"})
}

func (s *HttpServer) writeJson(w http.ResponseWriter, r *http.Request, code int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("failed encoding response", trace.LogFieldFrom(r.Context()), log.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(data); err != nil {
		s.logger.Info("error writing response", trace.LogFieldFrom(r.Context()), log.Error(err))
	}
}

func (s *HttpServer) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte("User-agent: *\nDisallow: /\n"))
	if err != nil {
		s.logger.Info("error writing robots.txt response", log.Error(err))
	}
}

func (s *HttpServer) dumpMetrics(w http.ResponseWriter, r *http.Request) {
	s.writeJson(w, r, http.StatusOK, s.metricRegistry.ExportAll())
}

func (s *HttpServer) dumpPrometheusMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")
	_, err := w.Write([]byte(s.metricRegistry.ExportPrometheus()))
	if err != nil {
		s.logger.Info("error writing response", log.Error(err))
	}
}
