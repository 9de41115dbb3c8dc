package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that can register its routes on a
// RouterGroup. The user registry and the debug metrics endpoint are
// each a module.
type Module interface {
	Register(rg *gin.RouterGroup)
}
