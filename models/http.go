package models

import "github.com/google/uuid"

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /login on success.
type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
}

// PostRequest is the body of POST /post.
type PostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ErrorResponse is the JSON body of every non-middleware failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
