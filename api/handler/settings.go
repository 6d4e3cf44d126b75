package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/pkg/httpcontext"
	"github.com/fastygo/planner/usecase/planner"
)

type SettingsHandler struct {
	baseHandler
	uc *planner.UseCase
}

func NewSettingsHandler(uc *planner.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary Get settings
// @Tags settings
// @Router /api/v1/settings [get]
func (h *SettingsHandler) GetSettings(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	h.respondSuccess(ctx, http.StatusOK, h.uc.Settings().Get(stdCtx))
}

// @Summary Replace settings
// @Tags settings
// @Router /api/v1/settings [put]
func (h *SettingsHandler) ReplaceSettings(ctx *fasthttp.RequestCtx) {
	settings := domain.DefaultSettings()
	if !h.decode(ctx, &settings) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.SaveSettings(stdCtx, settings); err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, settings)
}

// @Summary Update individual settings
// @Tags settings
// @Router /api/v1/settings [patch]
func (h *SettingsHandler) UpdateSettings(ctx *fasthttp.RequestCtx) {
	var patch domain.SettingsPatch
	if !h.decode(ctx, &patch) {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	merged, err := h.uc.UpdateSettings(stdCtx, patch)
	if err != nil {
		h.respondError(ctx, stdCtx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, merged)
}
