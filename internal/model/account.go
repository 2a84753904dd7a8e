package model

import "time"

// Role is the account namespace. Usernames are unique per role, not globally:
// an admin "alex" and a user "alex" are distinct accounts.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account represents a registered identity in either namespace.
type Account struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CredentialsRequest is the payload for registration and login in both
// namespaces. Required-field checks are done in the service so the exact
// contract message ("Username and password are required") is returned
// instead of a binding field map.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}
