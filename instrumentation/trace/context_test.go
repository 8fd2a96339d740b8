// Copyright 2019 the orbs-counter-go authors
// This file is part of the orbs-counter-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package trace

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"net/http"
	"strings"
	"testing"
)

func TestEntryPoint_DecoratesContext(t *testing.T) {
	ctx := NewContext(context.Background(), "foo")

	ep, ok := FromContext(ctx)

	require.True(t, ok)
	require.Equal(t, "foo", ep.name)
	require.NotEmpty(t, ep.requestId)
}

func TestNestedContextsRetainValue(t *testing.T) {
	ctx := NewContext(context.Background(), "foo")
	childCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ep, ok := FromContext(childCtx)

	require.True(t, ok)
	require.Equal(t, "foo", ep.name)
	require.NotEmpty(t, ep.requestId)
}

func TestPropagateContextRetainsValue(t *testing.T) {
	ctx := NewContext(context.Background(), "foo")
	ep, _ := FromContext(ctx)

	propagatedTracingContext, ok := FromContext(PropagateContext(context.Background(), ep))

	require.True(t, ok)
	require.Equal(t, "foo", propagatedTracingContext.name)
	require.Equal(t, ep.requestId, propagatedTracingContext.RequestId())
}

func TestTranslateToRequestAndBack(t *testing.T) {
	ctx := NewContext(context.Background(), "foo")
	ep, _ := FromContext(ctx)

	request, _ := http.NewRequest("POST", "http://localhost/readCounter", nil)
	ep.WriteTraceToRequest(request)

	require.Equal(t, "foo", request.Header.Get(EntryPointHeader))

	fctx := NewFromRequest(context.Background(), request)
	ep2, ok := FromContext(fctx)
	require.True(t, ok)
	require.Equal(t, ep.name, ep2.name)
	require.Equal(t, ep.requestId, ep2.requestId)
}

func TestNewFromRequest_StartsNewTraceWithoutHeaders(t *testing.T) {
	request, _ := http.NewRequest("POST", "http://localhost/readCounter", nil)

	ep, ok := FromContext(NewFromRequest(context.Background(), request))
	require.True(t, ok)
	require.Equal(t, "/readCounter", ep.name)
}

func TestValidateRequestIdFormat(t *testing.T) {
	const entryPoint = "testEntryPoint"

	tracingCtx, ok := FromContext(NewContext(context.Background(), entryPoint))
	require.True(t, ok)

	require.True(t, strings.HasPrefix(tracingCtx.requestId, entryPoint+"-"), "expected entry point in request id")
	_, err := uuid.Parse(strings.TrimPrefix(tracingCtx.requestId, entryPoint+"-"))
	require.NoError(t, err, "expected a uuid after the entry point")
}

func TestLogFieldFrom_WithoutTrace(t *testing.T) {
	f := LogFieldFrom(context.Background())
	require.Equal(t, "NO-CONTEXT", f.StringVal)

	var missing *Context
	require.Nil(t, missing.NestedFields())
	require.Empty(t, missing.RequestId())
}
