package models

import "studymate/internal/study"

// GenerateRequest is the body of POST /generate
type GenerateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GenerateResponse is returned by /generate and /process_pdf
type GenerateResponse struct {
	ModelUsed string `json:"model_used"`
	Result    string `json:"result"`
}

// QuestionResponse is returned by /important_questions
type QuestionResponse struct {
	Questions []string `json:"questions"`
	ModelUsed string   `json:"model_used"`
}

// QuizResponse is returned by /quiz
type QuizResponse struct {
	ModelUsed string           `json:"model_used"`
	Quiz      []study.QuizItem `json:"quiz"`
}

// StatusResponse is returned by GET /
type StatusResponse struct {
	Message     string `json:"message"`
	ActiveModel string `json:"active_model"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Detail string `json:"detail"`
}
