package dto

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// ValidationErrorResponse carries the accumulated per-field failures
// for metric validation.
type ValidationErrorResponse struct {
	Error   bool     `json:"error"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
