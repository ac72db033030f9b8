package handlers

import (
	"context"

	"github.com/Baz333/ds-rest-api-exam/config"
	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
	"github.com/Baz333/ds-rest-api-exam/service/crew"
	"github.com/gcottom/go-zaplog"
	"go.uber.org/zap"
)

// NewLambdaHandler builds the handler shared by the per-route lambda binaries from the environment.
func NewLambdaHandler(ctx context.Context) (*Handler, error) {
	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	zaplog.InfoC(ctx, "creating crew service", zap.String("table", cfg.TableName), zap.String("region", cfg.Region))
	return NewHandler(crew.NewService(dynamodb.CreateDynamoClient(ctx, cfg.Region, cfg.TableName))), nil
}
