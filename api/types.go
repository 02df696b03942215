package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	pageHandler    pageHandler
	contentHandler contentHandler
	contactHandler contactHandler
	authHandler    authHandler
	adminHandler   adminHandler
	healthHandler  healthHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Success bool        `json:"success"`
	User    sessionUser `json:"user"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type healthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
