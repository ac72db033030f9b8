package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/expression"
	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/retry"
	"go.uber.org/zap"
)

// QueryCrewRole runs a single key-condition query on (movieId, crewRole).
// A nil slice with a nil error means the response carried no Items at all;
// an empty slice means the query matched nothing. The query is not retried.
func (c *DynamoClient) QueryCrewRole(ctx context.Context, movieID int, crewRole string) ([]DBCrewRole, error) {
	zaplog.InfoC(ctx, "query db for crew role", zap.Int("movieId", movieID), zap.String("crewRole", crewRole))
	keyCond := expression.Key(AttrMovieID).Equal(expression.Value(movieID)).
		And(expression.Key(AttrCrewRole).Equal(expression.Value(crewRole)))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return nil, &DBQueryError{MovieID: movieID, CrewRole: crewRole, TableName: c.TableName, Err: err}
	}
	result, err := c.Client.QueryWithContext(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(c.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		zaplog.ErrorC(ctx, "fatal db error when querying crew role", zap.Int("movieId", movieID), zap.String("crewRole", crewRole), zap.Error(err))
		return nil, &DBQueryError{MovieID: movieID, CrewRole: crewRole, TableName: c.TableName, Err: err}
	}
	if result == nil || result.Items == nil {
		return nil, nil
	}
	items := []DBCrewRole{}
	if len(result.Items) == 0 {
		return items, nil
	}
	if err = dynamodbattribute.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, &DBQueryError{MovieID: movieID, CrewRole: crewRole, TableName: c.TableName, Err: err}
	}
	return items, nil
}

func (c *DynamoClient) PutCrewRole(ctx context.Context, record *DBCrewRole) error {
	zaplog.InfoC(ctx, "update db for crew role", zap.Int("movieId", record.MovieID), zap.String("crewRole", record.CrewRole))
	av, err := dynamodbattribute.MarshalMap(*record)
	if err != nil {
		return err
	}
	input := &dynamodb.PutItemInput{
		Item:      av,
		TableName: aws.String(c.TableName),
	}
	if _, err = retry.Retry(retry.NewAlgSimpleDefault(), 3, c.putItem, ctx, input); err != nil {
		zaplog.ErrorC(ctx, "fatal db error updating crew role", zap.Int("movieId", record.MovieID), zap.String("crewRole", record.CrewRole), zap.Error(err))
		return err
	}
	return nil
}

func (c *DynamoClient) putItem(ctx context.Context, input *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	return c.Client.PutItemWithContext(ctx, input)
}
