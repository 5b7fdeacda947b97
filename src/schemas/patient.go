package schemas

// AnalyzeRequest represents the body sent to the AI analysis endpoint.
type AnalyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeResponse represents the AI analysis endpoint's reply.
type AnalyzeResponse struct {
	Analysis string `json:"analysis"`
}

// ProfileResponse represents the backend's reply when saving or
// fetching a patient profile.
type ProfileResponse struct {
	Message string `json:"message"`
}
