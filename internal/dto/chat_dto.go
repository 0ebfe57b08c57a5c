package dto

type ChatRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id,omitempty"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
