package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/planner/api/transport"
	"github.com/fastygo/planner/internal/infrastructure/monitor"
	"github.com/fastygo/planner/pkg/httpcontext"
)

type healthReport struct {
	Timestamp time.Time      `json:"timestamp"`
	Uptime    string         `json:"uptime"`
	Store     monitor.Status `json:"store"`
}

// HealthHandler reports the store status cached by the monitor.
type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	started time.Time
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		started:     time.Now(),
	}
}

// Check answers 200 while the store is reachable and 503 otherwise.
// `?probe=true` forces a fresh probe instead of the cached result.
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	if !status.Checked() || ctx.QueryArgs().GetBool("probe") {
		stdCtx, cancel := h.requestContext(ctx)
		status = h.monitor.Refresh(stdCtx)
		cancel()
	}

	now := time.Now()
	report := healthReport{
		Timestamp: now.UTC(),
		Uptime:    now.Sub(h.started).Truncate(time.Second).String(),
		Store:     status,
	}
	if !status.Online {
		h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", transport.ErrorBody{Message: "store unreachable"}, report))
		return
	}
	h.respondSuccess(ctx, http.StatusOK, report)
}
