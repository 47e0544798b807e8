package models

// Common request and response models referenced by handler annotations.

// ErrorResponse is used in @Failure for error responses
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid input"`
	Details string `json:"details,omitempty" example:""`
}

// MessageResponse is the generic response for APIs that return only {"message": "..."}
type MessageResponse struct {
	Message string `json:"message" example:"Success"`
}

// LoginRequest is used in @Param for login body
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@constructioninnovation.local"`
	Password string `json:"password" binding:"required" example:"password"`
}

// LoginResponse is used in @Success for login
type LoginResponse struct {
	Message      string `json:"message" example:"User successfully logged in"`
	AccessToken  string `json:"access_token" example:"eyJhbGc..."`
	RefreshToken string `json:"refresh_token" example:"eyJhbGc..."`
	SessionID    string `json:"session_id" example:"uuid"`
	Email        string `json:"email" example:"admin@constructioninnovation.local"`
}

// RefreshRequest is used in @Param for the token refresh body
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGc..."`
}

// RefreshResponse is used in @Success for token refresh
type RefreshResponse struct {
	Message     string `json:"message" example:"Token refreshed"`
	AccessToken string `json:"access_token" example:"eyJhbGc..."`
	SessionID   string `json:"session_id" example:"uuid"`
}

// Session is a logged-in device, persisted in the session table.
type Session struct {
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	HostName  string `json:"host_name"`
	IPAddress string `json:"ip_address"`
	CreatedAt string `json:"created_at"`
	ExpiresAt string `json:"expires_at"`
}

// ImportResultResponse reports only the aggregate count; individually
// rejected rows are not itemized.
type ImportResultResponse struct {
	Message  string `json:"message" example:"CSV imported"`
	Imported int    `json:"imported" example:"12"`
	Skipped  int    `json:"skipped" example:"1"`
}

// UpdateResultResponse flags quiet no-ops on unknown ids.
type UpdateResultResponse struct {
	Message string `json:"message" example:"Updated"`
	Updated bool   `json:"updated" example:"true"`
}

// SaveResultResponse is returned by the persistence endpoints.
type SaveResultResponse struct {
	Saved   bool   `json:"saved" example:"true"`
	Message string `json:"message,omitempty"`
}
