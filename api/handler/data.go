package handler

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/planner/api/transport"
	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/exporter"
	"github.com/fastygo/planner/pkg/httpcontext"
	"github.com/fastygo/planner/pkg/view"
	"github.com/fastygo/planner/usecase/planner"
)

const defaultUpcomingLimit = 5

// DataHandler serves dashboard statistics and whole-dataset operations.
type DataHandler struct {
	baseHandler
	uc *planner.UseCase
}

func NewDataHandler(uc *planner.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *DataHandler {
	return &DataHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

type statsResponse struct {
	Statistics view.Statistics `json:"statistics"`
	Upcoming   []domain.Task   `json:"upcoming"`
	ByCourse   map[string]int  `json:"byCourse"`
}

// @Summary Dashboard statistics
// @Tags data
// @Router /api/v1/stats [get]
func (h *DataHandler) Stats(ctx *fasthttp.RequestCtx) {
	limit := parseInt(string(ctx.QueryArgs().Peek("upcoming")), defaultUpcomingLimit)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, statsResponse{
		Statistics: h.uc.Dashboard(stdCtx),
		Upcoming:   h.uc.UpcomingTasks(stdCtx, limit),
		ByCourse:   h.uc.CourseTaskCounts(stdCtx),
	})
}

// @Summary Download every collection as a JSON, YAML or XLSX document
// @Tags data
// @Router /api/v1/export [get]
func (h *DataHandler) Export(ctx *fasthttp.RequestCtx) {
	format, err := exporter.ParseFormat(string(ctx.QueryArgs().Peek("format")))
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Invalid(err.Error()))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	var buf bytes.Buffer
	if err := exporter.Encode(&buf, h.uc.ExportAll(stdCtx), format); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}

	ctx.Response.Header.SetContentType(exporter.ContentType(format))
	ctx.Response.Header.Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": exporter.DefaultFileName(format)}))
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(buf.Bytes())
}

// @Summary Replace the collections present in an uploaded document
// @Tags data
// @Router /api/v1/import [post]
func (h *DataHandler) Import(ctx *fasthttp.RequestCtx) {
	format := exporter.FormatJSON
	if raw := ctx.QueryArgs().Peek("format"); len(raw) > 0 {
		parsed, err := exporter.ParseFormat(string(raw))
		if err != nil {
			h.respondJSON(ctx, http.StatusBadRequest, transport.Invalid(err.Error()))
			return
		}
		format = parsed
	} else if bytes.Contains(ctx.Request.Header.ContentType(), []byte("yaml")) {
		format = exporter.FormatYAML
	}

	snapshot, err := exporter.Decode(bytes.NewReader(ctx.PostBody()), format)
	if err != nil {
		h.respondJSON(ctx, http.StatusBadRequest, transport.Invalid("invalid import document", err.Error()))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if !h.uc.ImportAll(stdCtx, snapshot) {
		h.respondError(ctx, stdCtx, domain.WrapError(domain.ErrCodeUnavailable, "import incomplete", domain.ErrStoreUnavailable))
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.ImportResult{
		Tasks:    len(snapshot.Tasks),
		Courses:  len(snapshot.Courses),
		Settings: snapshot.Settings != nil,
	})
}

// @Summary Remove every stored collection
// @Tags data
// @Router /api/v1/data [delete]
func (h *DataHandler) Clear(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if !h.uc.ClearAll(stdCtx) {
		h.respondError(ctx, stdCtx, domain.WrapError(domain.ErrCodeUnavailable, "clear incomplete", domain.ErrStoreUnavailable))
		return
	}
	h.respondNoContent(ctx)
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}

