package trace

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"strconv"
	"sync/atomic"
	"time"
)

// The context key type stays unexported so callers cannot collide with it.
type ctxKey string

const ctxKeyTrace ctxKey = "trace_info"

// Info carries tracing state for one HTTP request.
// - RequestID: unique per request
// - spanSeq: increments 1,2,3,... for each outbound call within the request
type Info struct {
	RequestID string
	spanSeq   int64
}

// GenerateID produces a random tracing ID.
func GenerateID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// timestamp fallback keeps tracing usable if rand fails
		return time.Now().UTC().Format("20060102T150405.000000000")
	}
	return hex.EncodeToString(b[:])
}

// WithRequestAndSpan stores the request ID and an initial span value
// (usually 0) in a new context.
func WithRequestAndSpan(ctx context.Context, requestID string, initialSpan int64) context.Context {
	info := &Info{RequestID: requestID, spanSeq: initialSpan}
	return context.WithValue(ctx, ctxKeyTrace, info)
}

func infoFromContext(ctx context.Context) *Info {
	if ctx == nil {
		return nil
	}
	v, _ := ctx.Value(ctxKeyTrace).(*Info)
	return v
}

// RequestIDFromContext reads the request ID from the context.
func RequestIDFromContext(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return ""
	}
	return info.RequestID
}

// CurrentSpanID returns the current span sequence value without
// incrementing it.
func CurrentSpanID(ctx context.Context) string {
	info := infoFromContext(ctx)
	if info == nil {
		return "0"
	}
	val := atomic.LoadInt64(&info.spanSeq)
	if val <= 0 {
		return "0"
	}
	return strconv.FormatInt(val, 10)
}

// NextSpanID increments spanSeq within the same request and returns the
// (requestID, spanID) pair.
func NextSpanID(ctx context.Context) (string, string) {
	info := infoFromContext(ctx)
	if info == nil {
		// fallback for use outside the middleware
		reqID := GenerateID()
		return reqID, "1"
	}
	val := atomic.AddInt64(&info.spanSeq, 1)
	if val <= 0 {
		val = 1
	}
	return info.RequestID, strconv.FormatInt(val, 10)
}
