package model

// UserLevel is the access level of an administration user.
type UserLevel string

// User levels.
const (
	LevelAdmin   UserLevel = "Admin"
	LevelManager UserLevel = "Manager"
)

var levelLabels = map[UserLevel]string{
	LevelAdmin:   "Administrador",
	LevelManager: "Gestor",
}

// Valid reports whether l is a known user level.
func (l UserLevel) Valid() bool {
	_, ok := levelLabels[l]
	return ok
}

// Label returns the label shown by the front-end.
func (l UserLevel) Label() string {
	if s, ok := levelLabels[l]; ok {
		return s
	}
	return string(l)
}

// User is an administration account. Password is never encoded as JSON;
// seed files carry it through the yaml tag.
type User struct {
	ID       int       `json:"id" yaml:"id"`
	Name     string    `json:"name" yaml:"name"`
	Email    string    `json:"email" yaml:"email"`
	Password string    `json:"-" yaml:"password"`
	Level    UserLevel `json:"level" yaml:"level"`
}

// PublicUser is the password-free user shape returned by every user route.
type PublicUser struct {
	ID    int       `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Level UserLevel `json:"level"`
}

// Public strips the password.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Level: u.Level}
}
