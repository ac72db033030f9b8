package crew

import (
	"context"

	"github.com/gcottom/go-zaplog"
	"go.uber.org/zap"
)

func (s *Service) Lookup(ctx context.Context, req Request, mode Mode) Response {
	key, err := ParseLookupKey(req.Role, req.MovieID)
	if err != nil {
		zaplog.WarnC(ctx, "invalid crew role lookup parameters", zap.String("role", req.Role), zap.String("movieId", req.MovieID), zap.Error(err))
		return NotFound(KindInvalidInput, MessageInvalidParameters)
	}
	rows, err := s.DBClient.QueryCrewRole(ctx, key.MovieID, key.CrewRole)
	if err != nil {
		zaplog.ErrorC(ctx, "crew role lookup failed", zap.Int("movieId", key.MovieID), zap.String("crewRole", key.CrewRole), zap.Error(err))
		return Unhandled()
	}
	resp := Resolve(key, req.Name, rows, mode)
	if resp.Kind != "" {
		zaplog.WarnC(ctx, "crew role lookup found nothing", zap.Int("movieId", key.MovieID), zap.String("crewRole", key.CrewRole), zap.String("kind", string(resp.Kind)))
		return resp
	}
	zaplog.InfoC(ctx, "crew role lookup resolved", zap.Int("movieId", key.MovieID), zap.String("crewRole", key.CrewRole))
	return resp
}
