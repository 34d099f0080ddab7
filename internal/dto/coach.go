package dto

import "fincoach/internal/services"

// ChatRequest is the POST /ai-coach payload
type ChatRequest struct {
	Message             string              `json:"message" validate:"required,max=2000"`
	ConversationHistory []services.ChatTurn `json:"conversationHistory"`
}

// ChatResponse carries the model's reply
type ChatResponse struct {
	Response string `json:"response"`
}
