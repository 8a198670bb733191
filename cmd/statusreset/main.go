package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sicko7947/statusreset/engine"
	"github.com/sicko7947/statusreset/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	ctx := context.Background()

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}

	client := dynamodb.NewFromConfig(cfg)
	eng := engine.NewEngine(
		store.NewDynamoDBService(client),
		engine.WithLogger(log.Logger),
	)

	if _, err := eng.Run(ctx); err != nil {
		// the engine has already logged the failure
		os.Exit(1)
	}
}
