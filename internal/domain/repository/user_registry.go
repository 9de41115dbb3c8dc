package repository

import "github.com/febryandana/go-user-registry/internal/domain/entity"

// UserRegistry defines the interface for the in-memory user registry.
//
// Add never fails and FindByID reports absence through the boolean,
// not an error: a missing record is a normal outcome, not a failure.
// When several records share an id, FindByID returns the one inserted
// first.
type UserRegistry interface {
	Add(u entity.User)
	FindByID(id int) (entity.User, bool)
	Len() int
}
