// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package httpserver

import (
	_ "embed"
	"net/http"
	"time"

	"github.com/orbs-network/orbs-counter-go/config"
	"github.com/orbs-network/scribe/log"
)

//go:embed index.html
var indexPage []byte

type StatusResponse struct {
	Uptime int64

	Counter struct {
		Value uint32
		Known bool
	}

	Version config.Version
}

func (s *HttpServer) getStatus(w http.ResponseWriter, r *http.Request) {
	status := StatusResponse{
		Uptime:  int64(time.Since(s.startTime).Seconds()),
		Version: config.GetVersion(),
	}
	status.Counter.Value, status.Counter.Known = s.display.LastKnown()

	s.writeJson(w, r, http.StatusOK, status)
}

func (s *HttpServer) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(indexPage)
	if err != nil {
		s.logger.Info("error writing index response", log.Error(err))
	}
}
