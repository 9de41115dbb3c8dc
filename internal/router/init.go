package router

import (
	userapp "github.com/febryandana/go-user-registry/internal/application"
	"github.com/febryandana/go-user-registry/internal/container"
	repouser "github.com/febryandana/go-user-registry/internal/domain/repository"
	handlers "github.com/febryandana/go-user-registry/internal/interface/http"
	"github.com/febryandana/go-user-registry/internal/router/modules"
)

type UserModuleDeps struct {
	Registry repouser.UserRegistry
	Service  *userapp.Service
	Handler  *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	registry := container.GetUserRegistry()

	service := userapp.NewService(registry, container.GetLogger())

	handler := handlers.NewUserHandler(service, container.GetLogger())

	return UserModuleDeps{
		Registry: registry,
		Service:  service,
		Handler:  handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler))

	if container.GetConfig() == nil || container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
