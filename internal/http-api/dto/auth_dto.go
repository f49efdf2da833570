package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration. Fields are deliberately
// unvalidated by gin binding; the registration validator applies its rules in
// a fixed order and each rule owns its message.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse: response payload after successful registration
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// LoginResponse: response payload after successful login
type LoginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username,omitempty"`
}

// StatusResponse: read-only identity probe result
type StatusResponse struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username,omitempty"`
}
