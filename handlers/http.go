package handlers

import (
	"net/http"

	"github.com/Baz333/ds-rest-api-exam/service/crew"
	"github.com/gcottom/go-zaplog"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) GetCrewRole(ctx *gin.Context) {
	h.lookup(ctx, crew.ModeSplit)
}

func (h *Handler) GetCrewNames(ctx *gin.Context) {
	h.lookup(ctx, crew.ModePassThrough)
}

func (h *Handler) lookup(ctx *gin.Context, mode crew.Mode) {
	defer func() {
		if r := recover(); r != nil {
			zaplog.ErrorC(ctx, "recovered from panic during crew role lookup", zap.Any("panic", r))
			ctx.JSON(http.StatusInternalServerError, crew.Unhandled().Body)
		}
	}()
	zaplog.InfoC(ctx, "crew role request received", zap.String("path", ctx.Request.URL.Path), zap.String("query", ctx.Request.URL.RawQuery))
	result := h.CrewService.Lookup(ctx, crew.Request{
		Role:    ctx.Param("role"),
		MovieID: ctx.Param("movieId"),
		Name:    ctx.Query("name"),
	}, mode)
	ctx.JSON(result.StatusCode, result.Body)
}

func (h *Handler) Health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

type HealthResponse struct {
	Status string `json:"status"`
}
