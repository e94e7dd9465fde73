package resource

import (
	"strings"

	"github.com/sqlutions-fatec/radarmock/pkg/model"
	"github.com/sqlutions-fatec/radarmock/pkg/seed"
	"github.com/sqlutions-fatec/radarmock/pkg/store"
)

// UserInput is the body of user create and update requests.
type UserInput struct {
	Name     string          `json:"name"`
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Level    model.UserLevel `json:"level"`
}

// Users is the user query engine. Every returned user has its password
// stripped.
type Users struct {
	store *store.Store
}

// List returns every user.
func (e *Users) List() []model.PublicUser {
	out := make([]model.PublicUser, 0, len(e.store.Users))
	for _, u := range e.store.Users {
		out = append(out, u.Public())
	}
	return out
}

// Get returns the user with the given id.
func (e *Users) Get(id int) (model.PublicUser, error) {
	i := e.index(id)
	if i < 0 {
		return model.PublicUser{}, notFound("User", id)
	}
	return e.store.Users[i].Public(), nil
}

// Create appends a new user. Emails are unique and compared case-sensitively.
func (e *Users) Create(in UserInput) (model.PublicUser, error) {
	email := strings.TrimSpace(in.Email)
	if in.Level != "" && !in.Level.Valid() {
		return model.PublicUser{}, &ValidationError{Field: "level", Message: "Invalid user level"}
	}
	if e.taken(email, -1) {
		return model.PublicUser{}, emailConflict(email)
	}
	u := model.User{
		ID:       e.store.NextID(seed.Users),
		Name:     in.Name,
		Email:    email,
		Password: in.Password,
		Level:    in.Level,
	}
	e.store.Users = append(e.store.Users, u)
	return u.Public(), nil
}

// Update overwrites the non-empty fields of in. The password changes only
// when one is supplied.
func (e *Users) Update(id int, in UserInput) (model.PublicUser, error) {
	i := e.index(id)
	if i < 0 {
		return model.PublicUser{}, notFound("User", id)
	}
	if in.Level != "" && !in.Level.Valid() {
		return model.PublicUser{}, &ValidationError{Field: "level", Message: "Invalid user level"}
	}
	email := strings.TrimSpace(in.Email)
	if email != "" && e.taken(email, i) {
		return model.PublicUser{}, emailConflict(email)
	}
	u := &e.store.Users[i]
	u.Name = pick(u.Name, in.Name)
	u.Email = pick(u.Email, email)
	u.Password = pick(u.Password, in.Password)
	u.Level = pick(u.Level, in.Level)
	return u.Public(), nil
}

// Delete removes the user and returns it without its password.
func (e *Users) Delete(id int) (model.PublicUser, error) {
	i := e.index(id)
	if i < 0 {
		return model.PublicUser{}, notFound("User", id)
	}
	u := e.store.Users[i]
	e.store.Users = remove(e.store.Users, i)
	return u.Public(), nil
}

func (e *Users) index(id int) int {
	return indexOf(e.store.Users, func(u model.User) bool { return u.ID == id })
}

// taken reports whether a user other than the one at index except has
// email. except -1 checks them all.
func (e *Users) taken(email string, except int) bool {
	for i, u := range e.store.Users {
		if i != except && u.Email == email {
			return true
		}
	}
	return false
}

func emailConflict(email string) *ConflictError {
	return &ConflictError{Resource: "User", Field: "email", Value: email, Message: "Email already exists"}
}
