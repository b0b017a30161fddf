// Package instrument provides an OpenTelemetry-traced executor for the
// Dify client.
//
//	client, err := dify.New(apiKey,
//	    dify.WithExecutor(instrument.NewExecutor(nil)),
//	)
//
// Each call produces one client span named "dify <METHOD> <path>" carrying
// the X-Request-ID as dify.request_id. Trace context is injected into the
// outgoing headers with the global propagator.
package instrument

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RequestIDKey is the span attribute holding the X-Request-ID header.
const RequestIDKey = attribute.Key("dify.request_id")

// NewExecutor returns a copy of base whose transport is wrapped with
// otelhttp. A nil base uses an empty client over http.DefaultTransport.
// opts are applied after the defaults and can override the span name
// formatter.
func NewExecutor(base *http.Client, opts ...otelhttp.Option) *http.Client {
	if base == nil {
		base = &http.Client{}
	}
	c := *base

	rt := c.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}

	all := append([]otelhttp.Option{otelhttp.WithSpanNameFormatter(SpanName)}, opts...)
	c.Transport = otelhttp.NewTransport(requestIDTransport{next: rt}, all...)
	return &c
}

// SpanName formats client span names as "dify GET /v1/info".
func SpanName(_ string, r *http.Request) string {
	return "dify " + r.Method + " " + r.URL.Path
}

// requestIDTransport runs inside the otelhttp span and tags it with the
// request id.
type requestIDTransport struct {
	next http.RoundTripper
}

func (t requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if id := req.Header.Get("X-Request-ID"); id != "" {
		trace.SpanFromContext(req.Context()).SetAttributes(RequestIDKey.String(id))
	}
	return t.next.RoundTrip(req)
}
