package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/planner/pkg/logger"
)

// HeaderRequestID carries the correlation ID in both directions.
const HeaderRequestID = "X-Request-ID"

const defaultTimeout = 5 * time.Second

type ctxKey int

const (
	keyRemoteAddr ctxKey = iota
	keyUserAgent
)

// Adapter derives the context.Context that bounds the store calls of a
// single fasthttp request.
type Adapter struct {
	timeout time.Duration
}

func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Adapter{timeout: timeout}
}

// Timeout returns the per-request deadline applied by Attach.
func (a *Adapter) Timeout() time.Duration {
	return a.timeout
}

// Attach returns a context bounded by the adapter timeout. It carries the
// request ID, which is echoed on the response, plus the client address and
// user agent. A nil ctx yields a bare context with a fresh ID.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)
	if ctx == nil {
		return appLogger.ContextWithRequestID(stdCtx, uuid.NewString()), cancel
	}

	reqID := ensureRequestID(ctx)
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)
	ctx.Response.Header.Set(HeaderRequestID, reqID)

	if addr := ctx.RemoteAddr(); addr != nil {
		stdCtx = context.WithValue(stdCtx, keyRemoteAddr, addr.String())
	}
	if ua := ctx.Request.Header.UserAgent(); len(ua) > 0 {
		stdCtx = context.WithValue(stdCtx, keyUserAgent, string(ua))
	}
	return stdCtx, cancel
}

// RemoteAddr returns the client address recorded by Attach.
func RemoteAddr(ctx context.Context) string {
	v, _ := ctx.Value(keyRemoteAddr).(string)
	return v
}

// UserAgent returns the client user agent recorded by Attach.
func UserAgent(ctx context.Context) string {
	v, _ := ctx.Value(keyUserAgent).(string)
	return v
}

// ensureRequestID returns the request's correlation ID, assigning one to
// the request header when the client sent none.
func ensureRequestID(ctx *fasthttp.RequestCtx) string {
	if id := strings.TrimSpace(string(ctx.Request.Header.Peek(HeaderRequestID))); id != "" {
		return id
	}
	id := uuid.NewString()
	ctx.Request.Header.Set(HeaderRequestID, id)
	return id
}
