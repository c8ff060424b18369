package models

const (
	RoleUser    = "user"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

// TokenResponse is the body returned by register and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
