package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/gcottom/go-zaplog"
	"go.uber.org/zap"
)

func CreateDynamoClient(ctx context.Context, region string, tableName string) *DynamoClient {
	zaplog.InfoC(ctx, "creating dynamo client", zap.String("region", region), zap.String("table", tableName))
	conf := aws.Config{Region: aws.String(region)}
	sess := session.Must(session.NewSession(&conf))
	svc := dynamodb.New(sess)
	return &DynamoClient{Client: svc, TableName: tableName}
}
