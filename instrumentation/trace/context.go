// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"github.com/google/uuid"
	"github.com/orbs-network/scribe/log"
	"net/http"
	"time"
)

type entryPointKeyType string

const entryPointKey entryPointKeyType = "ep"
const RequestId = "request-id"
const RequestIdHeader = "X-Request-Id"
const EntryPointHeader = "X-Entry-Point"

type Context struct {
	created   time.Time
	name      string
	requestId string
}

func NewContext(parent context.Context, name string) context.Context {
	return newContext(parent, name, name+"-"+uuid.New().String())
}

func newContext(parent context.Context, name string, requestId string) context.Context {
	ep := &Context{
		name:      name,
		created:   time.Now(),
		requestId: requestId,
	}
	return context.WithValue(parent, entryPointKey, ep)
}

func PropagateContext(parent context.Context, tracingContext *Context) context.Context {
	return context.WithValue(parent, entryPointKey, tracingContext)
}

func FromContext(ctx context.Context) (e *Context, ok bool) {
	e, ok = ctx.Value(entryPointKey).(*Context)
	return
}

func (c *Context) RequestId() string {
	if c == nil {
		return ""
	}
	return c.requestId
}

func (c *Context) NestedFields() []*log.Field {
	if c == nil { // this can happen if the tracing.Context was never created, e.g. context logged doesn't have this context value
		return nil
	}

	return []*log.Field{
		log.String("entry-point", c.name),
		log.String(RequestId, c.requestId),
	}
}

func LogFieldFrom(ctx context.Context) *log.Field {
	if trace, ok := FromContext(ctx); ok {
		return &log.Field{Key: "trace", Nested: trace, Type: log.AggregateType}
	} else {
		return log.String("trace", "NO-CONTEXT")
	}
}

func (c *Context) WriteTraceToRequest(r *http.Request) {
	r.Header.Set(EntryPointHeader, c.name)
	r.Header.Set(RequestIdHeader, c.requestId)
}

// NewFromRequest continues the caller's trace when the request carries one
func NewFromRequest(parent context.Context, r *http.Request) context.Context {
	name := r.Header.Get(EntryPointHeader)
	if name == "" {
		name = r.URL.Path
	}

	if requestId := r.Header.Get(RequestIdHeader); requestId != "" {
		return newContext(parent, name, requestId)
	}

	return NewContext(parent, name)
}
