package mycontext

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/hatua/futuretech/lib/myuuid"
)

// CtxTraceContext is a context key for the trace of the current request (used by mylog)
type CtxTraceContext struct{}

var uuider myuuid.UUIDer = myuuid.RealUUIDer{}

// ContextFromHTTPRequest derives from the request context, so a client disconnect
// also cancels the outbound calls made on its behalf.
func ContextFromHTTPRequest(r *http.Request) context.Context {
	return WithTrace(r.Context(), traceFromHeader(r))
}

func WithTrace(c context.Context, trace string) context.Context {
	return context.WithValue(c, CtxTraceContext{}, trace)
}

func TraceFromContext(c context.Context) string {
	trace, ok := c.Value(CtxTraceContext{}).(string)
	if !ok {
		return ""
	}
	return trace
}

func traceFromHeader(r *http.Request) string {
	traceContext := r.Header.Get("X-Cloud-Trace-Context")
	traceParts := strings.Split(traceContext, "/")

	if len(traceParts) > 0 && len(traceParts[0]) > 0 {
		projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
		return fmt.Sprintf("projects/%s/traces/%s", projectID, traceParts[0])
	}

	if requestID := r.Header.Get("X-Request-Id"); requestID != "" {
		return requestID
	}

	return uuider.Create()
}
