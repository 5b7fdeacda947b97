package schemas

// ErrorResponse represents the backend's error body on any non-2xx
// response. Only the message is guaranteed to be present.
type ErrorResponse struct {
	Message string `json:"message"`
}
