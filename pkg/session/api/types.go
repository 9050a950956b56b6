package api

// LoginRequest represents the request body for POST /login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest represents the request body for POST /register
type RegisterRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role,omitempty"`
}

// PasswordResetInitRequest represents the request to initiate password reset
type PasswordResetInitRequest struct {
	Email string `json:"email"`
}

// UserInfo is the signed-in user payload returned by auth endpoints
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AuthResponse represents the response for successful login or registration
type AuthResponse struct {
	Status      string   `json:"status"`
	User        UserInfo `json:"user"`
	AccessToken string   `json:"access_token"`
}

// MessageResponse is a generic success payload
type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}
