package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/gadgeski/Docker-Assignment1/internal/app/server"
	"github.com/gadgeski/Docker-Assignment1/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	cfg, err := server.NewConfig()
	if err != nil {
		logging.Fatal("failed to load config", zap.Error(err))
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logging.Fatal("invalid log level", zap.Error(err))
	}
	lambda.Start(server.NewGreetingRoutes(cfg.Greeting).HandleAPIGateway)
}
