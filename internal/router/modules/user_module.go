package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/febryandana/go-user-registry/internal/interface/http"
)

// UserModule wires the registry HTTP handlers into routes.
// POST /api/users, GET /api/users/count, GET /api/users/:id
// All routes are registered under the given RouterGroup (usually /api)

type UserModule struct {
	Handler *handlers.UserHandler
}

func NewUserModule(h *handlers.UserHandler) *UserModule {
	return &UserModule{Handler: h}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/users", m.Handler.Register)
	// static route first so gin does not treat "count" as an :id
	rg.GET("/users/count", m.Handler.Count)
	rg.GET("/users/:id", m.Handler.GetByID)
}
