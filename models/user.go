package models

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Credential is a login record loaded at startup. It is never persisted.
type Credential struct {
	Username     string
	PasswordHash string
	Role         Role
}

// Identity is the caller resolved from a verified access token.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
