package main

import (
	"context"
	"flag"
	"os"

	"github.com/Baz333/ds-rest-api-exam/config"
	"github.com/Baz333/ds-rest-api-exam/service/aws/dynamodb"
	"github.com/Baz333/ds-rest-api-exam/service/seed"
	"github.com/gcottom/go-zaplog"
	"go.uber.org/zap"
)

func main() {
	source := flag.String("source", "./data/crew_roles.json", "seed document: local path or s3://bucket/key")
	configPath := flag.String("config", "", "path to the yaml config")
	flag.Parse()
	config, err := config.LoadConfigFromFile(*configPath)
	if err != nil {
		panic(err)
	}
	ctx := zaplog.CreateAndInject(context.Background())
	dbClient := dynamodb.CreateDynamoClient(ctx, config.Region, config.TableName)
	seedService := seed.NewSeedService(dbClient, config.SeedConcurrency, config.Region)
	written, err := seedService.Seed(ctx, *source)
	if err != nil {
		zaplog.ErrorC(ctx, "seeding finished with errors", zap.Int("written", written), zap.Error(err))
		os.Exit(1)
	}
	zaplog.InfoC(ctx, "seeding finished", zap.Int("written", written), zap.String("table", config.TableName))
}
