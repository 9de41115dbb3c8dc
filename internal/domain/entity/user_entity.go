package entity

// User is the aggregate root for the registry domain.
// It is a plain immutable value: the registry enforces no invariants,
// so duplicate ids, empty names and malformed emails are all accepted.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
