package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/planner/api/transport"
	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/httpcontext"
	"github.com/fastygo/planner/usecase/planner"
)

type CourseHandler struct {
	baseHandler
	uc *planner.UseCase
}

func NewCourseHandler(uc *planner.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *CourseHandler {
	return &CourseHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List courses
// @Tags courses
// @Router /api/v1/courses [get]
func (h *CourseHandler) GetCourses(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	courses := h.uc.Courses().GetAll(stdCtx)
	h.respondList(ctx, courses, transport.ListMeta{Count: len(courses), Total: len(courses)})
}

// @Summary Create course
// @Tags courses
// @Router /api/v1/courses [post]
func (h *CourseHandler) CreateCourse(ctx *fasthttp.RequestCtx) {
	var req transport.CourseRequest
	if !h.decode(ctx, &req) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.uc.AddCourse(stdCtx, req.Course())
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// @Summary Update course fields
// @Tags courses
// @Router /api/v1/courses/{id} [patch]
func (h *CourseHandler) UpdateCourse(ctx *fasthttp.RequestCtx) {
	var patch domain.CoursePatch
	if !h.decode(ctx, &patch) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.uc.UpdateCourse(stdCtx, pathID(ctx), patch)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// @Summary Delete course
// @Tags courses
// @Router /api/v1/courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.RemoveCourse(stdCtx, pathID(ctx)); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondNoContent(ctx)
}
