package memory

import (
	"sync"

	"github.com/febryandana/go-user-registry/internal/domain/entity"
	"github.com/febryandana/go-user-registry/internal/domain/repository"
)

// Compile-time assertion: *UserRegistry satisfies the domain port.
var _ repository.UserRegistry = (*UserRegistry)(nil)

// UserRegistry stores users in an insertion-ordered slice. It is
// append-only: records are never updated or removed, and nothing is
// persisted across process restarts.
type UserRegistry struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUserRegistry returns an empty registry ready for use.
func NewUserRegistry() *UserRegistry {
	return &UserRegistry{}
}

// Add appends the record to the end of the registry. Uniqueness of the
// id is not checked.
func (r *UserRegistry) Add(u entity.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users = append(r.users, u)
}

// FindByID scans from the front and returns the first record whose id
// matches. The earliest-inserted record wins when ids collide; lookups
// stay linear scans on purpose, there is no index to keep in sync.
func (r *UserRegistry) FindByID(id int) (entity.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, true
		}
	}
	return entity.User{}, false
}

// Len reports how many records have been added.
func (r *UserRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
