package main

import (
	"context"

	"github.com/Baz333/ds-rest-api-exam/handlers"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gcottom/go-zaplog"
)

var h *handlers.Handler

func init() {
	var err error
	h, err = handlers.NewLambdaHandler(zaplog.CreateAndInject(context.Background()))
	if err != nil {
		panic(err)
	}
}

func main() {
	lambda.Start(handler)
}

func handler(ctx context.Context, req events.APIGatewayV2HTTPRequest) (*events.APIGatewayV2HTTPResponse, error) {
	return h.CrewNamesEvent(zaplog.CreateAndInject(ctx), req)
}
