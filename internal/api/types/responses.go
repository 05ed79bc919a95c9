package types

// APIResponse is the envelope carried by every response.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// AuthData is the payload returned by register and login.
type AuthData struct {
	User  interface{} `json:"user"`
	Token string      `json:"token"`
}
