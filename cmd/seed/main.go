package main

import (
	"context"

	"github.com/joho/godotenv"

	"github.com/febryandana/go-user-registry/config"
	"github.com/febryandana/go-user-registry/internal/application"
	"github.com/febryandana/go-user-registry/internal/infrastructure/memory"
	"github.com/febryandana/go-user-registry/pkg/helpers"
)

// Demonstration entry point: build one registry, register a single
// literal record, and exit. The registry is in-memory, so the record
// lives only as long as this process.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	registry := memory.NewUserRegistry()
	svc := application.NewService(registry, logger)

	res := svc.RegisterUser(context.Background(), application.RegisterUserInput{
		ID:    1,
		Name:  "Test",
		Email: "test@example.com",
	})
	logger.WithField("user_id", res.ID).Info("user added successfully")
}
