package model

// Credentials is a login attempt. Passwords are stored and compared as plain text.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
