// Package testmodels contains sample types documented in tests.
package testmodels

import "fmt"

// Role grants permissions to a [User].
type Role string

// Roles known to the application.
const (
	// RoleAdmin can do anything.
	RoleAdmin Role = "admin"
	RoleGuest Role = "guest" // RoleGuest can only read.
	roleRoot  Role = "root"
)

// Entity is the root of every persisted model.
type Entity struct {
	// ID is the unique identifier.
	ID int64
}

// Identifier returns the [Entity.ID].
func (e Entity) Identifier() int64 { return e.ID }

// Model adds timestamps to an [Entity].
type Model struct {
	Entity
	// CreatedAt is a Unix timestamp.
	CreatedAt int64
}

// Touch updates the timestamps.
func (m *Model) Touch() {}

// User of the application.
//
// Users are identified by their e-mail address.
type User struct {
	Model
	// Email is the e-mail address.
	Email    string
	Roles    []Role
	password string
}

// Identifier returns the e-mail address hash.
func (u User) Identifier() int64 { return int64(len(u.Email)) }

// Save persists the user.
func (u *User) Save(force bool, fields ...string) (bool, error) {
	return force && len(fields) > 0 && u.password != "", nil
}

// Repository stores users.
type Repository interface {
	fmt.Stringer
	// Find looks up a user by its [Entity.ID].
	Find(id int64) (*User, error)
}
