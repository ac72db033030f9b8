package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/Baz333/ds-rest-api-exam/config"
	"github.com/Baz333/ds-rest-api-exam/handlers"
	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
	"github.com/Baz333/ds-rest-api-exam/service/crew"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gcottom/go-zaplog"
	"github.com/gcottom/qgin/qgin"
	"github.com/gin-contrib/cors"
)

func main() {
	config, err := config.LoadConfigFromFile(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err)
	}
	if err := RunServer(config); err != nil {
		panic(err)
	}
}

func RunServer(cfg *config.Config) error {
	ctx := zaplog.CreateAndInject(context.Background())
	zaplog.InfoC(ctx, "starting crew role server")

	dbClient := dynamodb.CreateDynamoClient(ctx, cfg.Region, cfg.TableName)

	zaplog.InfoC(ctx, "creating crew service")
	crewService := crew.NewService(dbClient)

	zaplog.InfoC(ctx, "creating gin engine")
	ginws := qgin.NewGinEngine(&ctx, &qgin.Config{
		UseContextMW:       true,
		UseLoggingMW:       true,
		UseRequestIDMW:     true,
		InjectRequestIDCTX: true,
		LogRequestID:       true,
		ProdMode:           true,
	})
	ginws.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	zaplog.InfoC(ctx, "setting up routes")
	handlers.SetupRoutes(ginws, crewService)

	if config.IsRunningInLambda() {
		zaplog.InfoC(ctx, "serving through api gateway proxy")
		lambda.Start(ginadapter.NewV2(ginws).ProxyWithContext)
		return nil
	}

	zaplog.InfoC(ctx, fmt.Sprintf("serving on port %d", cfg.LocalPort))
	return http.ListenAndServe(fmt.Sprintf(":%d", cfg.LocalPort), ginws)
}
