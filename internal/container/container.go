package container

import (
	"github.com/sirupsen/logrus"

	"github.com/febryandana/go-user-registry/config"
	"github.com/febryandana/go-user-registry/internal/domain/repository"
	"github.com/febryandana/go-user-registry/internal/infrastructure/memory"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg    *config.Config
	logger *logrus.Logger

	userRegistry repository.UserRegistry
)

func SetConfig(c *config.Config) { cfg = c }
func GetConfig() *config.Config  { return cfg }
func SetLogger(l *logrus.Logger) { logger = l }
func GetLogger() *logrus.Logger  { return logger }

func SetUserRegistry(r repository.UserRegistry) { userRegistry = r }

// GetUserRegistry falls back to a fresh in-memory registry so tests and
// tools that skip main's wiring still get a working instance.
func GetUserRegistry() repository.UserRegistry {
	if userRegistry == nil {
		userRegistry = memory.NewUserRegistry()
	}
	return userRegistry
}
