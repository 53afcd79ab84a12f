package domain

// Role distinguishes guests from administrators.
type Role string

// Available roles.
const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an account that can sign in.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`

	// PasswordHash is the bcrypt hash; it never leaves the server
	PasswordHash string `json:"-"`

	Role Role `json:"role"`
}

// IsAdmin returns true for administrator accounts.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Identity is the authenticated principal carried by a verified token.
type Identity struct {
	UserID  string
	IsAdmin bool
}
