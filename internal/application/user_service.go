package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/febryandana/go-user-registry/internal/domain/entity"
	repo "github.com/febryandana/go-user-registry/internal/domain/repository"
)

type Service struct {
	Registry repo.UserRegistry
	Logger   *logrus.Logger
}

func NewService(registry repo.UserRegistry, logger *logrus.Logger) *Service {
	return &Service{Registry: registry, Logger: logger}
}

type RegisterUserInput struct {
	ID    int
	Name  string
	Email string
}

type UserResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toResponse(u entity.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

// RegisterUser appends a new record to the registry. The input is taken
// as-is: no field is validated and ids are not required to be unique.
// The context is accepted for uniformity with the rest of the
// application layer; the call completes synchronously.
func (s *Service) RegisterUser(ctx context.Context, in RegisterUserInput) UserResponse {
	u := entity.User{ID: in.ID, Name: in.Name, Email: in.Email}
	s.Registry.Add(u)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "total": s.Registry.Len()}).Debug("user registered")
	}
	return toResponse(u)
}

// LookupUser returns the earliest-inserted record with the given id.
// The boolean is false when no record matches; that is the normal
// absent outcome, not an error.
func (s *Service) LookupUser(ctx context.Context, id int) (UserResponse, bool) {
	u, ok := s.Registry.FindByID(id)
	if !ok {
		return UserResponse{}, false
	}
	return toResponse(u), true
}

// Count reports how many records the registry holds.
func (s *Service) Count(ctx context.Context) int {
	return s.Registry.Len()
}
