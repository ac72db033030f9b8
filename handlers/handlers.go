package handlers

import (
	"context"
	"encoding/json"

	"github.com/Baz333/ds-rest-api-exam/service/crew"
	"github.com/aws/aws-lambda-go/events"
	"github.com/gcottom/go-zaplog"
	"go.uber.org/zap"
)

const ContentTypeJSON = "application/json"

type Handler struct {
	CrewService *crew.Service
}

func NewHandler(crewService *crew.Service) *Handler {
	return &Handler{CrewService: crewService}
}

// CrewRoleEvent answers with the split and optionally filtered names.
func (h *Handler) CrewRoleEvent(ctx context.Context, req events.APIGatewayV2HTTPRequest) (*events.APIGatewayV2HTTPResponse, error) {
	return h.lookupEvent(ctx, req, crew.ModeSplit)
}

// CrewNamesEvent answers with the stored names string as-is.
func (h *Handler) CrewNamesEvent(ctx context.Context, req events.APIGatewayV2HTTPRequest) (*events.APIGatewayV2HTTPResponse, error) {
	return h.lookupEvent(ctx, req, crew.ModePassThrough)
}

func (h *Handler) lookupEvent(ctx context.Context, req events.APIGatewayV2HTTPRequest, mode crew.Mode) (resp *events.APIGatewayV2HTTPResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			zaplog.ErrorC(ctx, "recovered from panic during crew role lookup", zap.Any("panic", r))
			resp, err = JSONResponse(ctx, crew.Unhandled()), nil
		}
	}()
	zaplog.InfoC(ctx, "event", zap.String("routeKey", req.RouteKey), zap.String("rawPath", req.RawPath),
		zap.Any("pathParameters", req.PathParameters), zap.Any("queryStringParameters", req.QueryStringParameters))
	result := h.CrewService.Lookup(ctx, crew.Request{
		Role:    req.PathParameters["role"],
		MovieID: req.PathParameters["movieId"],
		Name:    req.QueryStringParameters["name"],
	}, mode)
	return JSONResponse(ctx, result), nil
}

func JSONResponse(ctx context.Context, result crew.Response) *events.APIGatewayV2HTTPResponse {
	body, err := json.Marshal(result.Body)
	if err != nil {
		zaplog.ErrorC(ctx, "failed to marshal response", zap.Error(err))
		result = crew.Unhandled()
		body, _ = json.Marshal(result.Body)
	}
	return &events.APIGatewayV2HTTPResponse{
		StatusCode: result.StatusCode,
		Headers:    map[string]string{"content-type": ContentTypeJSON},
		Body:       string(body),
	}
}
