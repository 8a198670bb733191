package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"github.com/sicko7947/statusreset"
	"github.com/sicko7947/statusreset/engine"
	"github.com/sicko7947/statusreset/store"
)

// Shared across warm invocations
var eng *engine.Engine

// handleRequest runs one reset per invocation. Any event payload is ignored.
func handleRequest(ctx context.Context) (*statusreset.RunReport, error) {
	return eng.Run(ctx)
}

func main() {
	// CloudWatch already timestamps lines; emit plain JSON
	logger := zerolog.New(os.Stdout).With().Str("service", "statusreset").Logger()

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	eng = engine.NewEngine(
		store.NewDynamoDBService(dynamodb.NewFromConfig(cfg)),
		engine.WithLogger(logger),
	)

	lambda.Start(handleRequest)
}
