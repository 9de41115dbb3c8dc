package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/febryandana/go-user-registry/internal/application"
	"github.com/febryandana/go-user-registry/pkg/response"
	"github.com/febryandana/go-user-registry/pkg/validation"
)

type UserHandler struct {
	Svc    *userapp.Service
	Logger *logrus.Logger
}

func NewUserHandler(svc *userapp.Service, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// registerRequest intentionally carries no validation tags: the
// registry accepts any record, including duplicate ids and empty
// fields. Only unparseable JSON is rejected, at the transport level.
type registerRequest struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res := h.Svc.RegisterUser(c.Request.Context(), userapp.RegisterUserInput{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
	})
	response.Success(c, http.StatusCreated, res, "user registered", map[string]any{"total": h.Svc.Count(c.Request.Context())})
}

func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", map[string]string{"id": "must be an integer"})
		return
	}

	res, ok := h.Svc.LookupUser(c.Request.Context(), id)
	if !ok {
		// Absent is a normal outcome; the 404 carries no error details.
		response.Error[any](c, http.StatusNotFound, "user not found", nil)
		return
	}
	response.Success(c, http.StatusOK, res, "user", nil)
}

func (h *UserHandler) Count(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"count": h.Svc.Count(c.Request.Context())}, "registry size", nil)
}
