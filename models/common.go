package models

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error"
	Message string `json:"message"`
}

// Flash message types
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// MessageResponse is the JSON body used for API confirmations and errors
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
