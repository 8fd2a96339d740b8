// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

// Package api drives the display service's HTTP API the way the page does
package api

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

type Response struct {
	StatusCode int    `json:"-"`
	Result     string `json:"result"`
	Error      string `json:"error"`
}

type Client struct {
	baseUrl string
	http    *http.Client
}

func NewClient(baseUrl string) *Client {
	return &Client{
		baseUrl: baseUrl,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func NewLocalClient(port int) *Client {
	return NewClient(fmt.Sprintf("http://127.0.0.1:%d", port))
}

func (c *Client) ReadCounter() (*Response, error) {
	return c.post("/readCounter", nil)
}

func (c *Client) IncrementByOne() (*Response, error) {
	return c.post("/incrementByOne", nil)
}

func (c *Client) IncrementByN(increment interface{}) (*Response, error) {
	return c.post("/incrementByN", map[string]interface{}{"increment": increment})
}

func (c *Client) post(path string, body interface{}) (*Response, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, errors.Wrapf(err, "failed encoding request to %s", path)
		}
	}

	res, err := c.http.Post(c.baseUrl+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "failed posting to %s", path)
	}
	defer res.Body.Close()

	data, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed reading response from %s", path)
	}

	response := &Response{StatusCode: res.StatusCode}
	if err := json.Unmarshal(data, response); err != nil {
		return nil, errors.Wrapf(err, "response from %s is not json: %s", path, string(data))
	}

	return response, nil
}
