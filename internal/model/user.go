package model

// User represents an account row in the database.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required"`
}

// SigninRequest represents a user login request.
type SigninRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// MessageResponse is a bare acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// SigninResponse identifies the signed-in user. Token is a bearer token for
// clients that want one; older clients ignore it.
type SigninResponse struct {
	Message  string `json:"message"`
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Token    string `json:"token,omitempty"`
}
