// Package models contains data types exchanged between the riskadvisor
// client and the backend API.
package models

import "time"

// Role is the server-assigned authorization role of a user.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is an identity snapshot received from the server. The client never
// mutates it, only replaces it wholesale with the result of a "who am I"
// call.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Credential is an opaque bearer token. The client never parses or
// validates its internal structure; the server is the source of truth
// for its validity.
type Credential struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthorizationValue formats the credential for the Authorization header.
func (c Credential) AuthorizationValue() string {
	return "Bearer " + c.AccessToken
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the data of a successful login envelope.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        Role   `json:"role"`
}
