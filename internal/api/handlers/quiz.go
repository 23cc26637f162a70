package handlers

import (
	"log"
	"net/http"

	"studymate/internal/models"
	"studymate/internal/study"

	"github.com/gin-gonic/gin"
)

// HandleImportantQuestions generates exam-style questions from an uploaded PDF.
func (h *Handler) HandleImportantQuestions(c *gin.Context) {
	const operation, failure = "Important questions", "Error extracting questions"

	text, err := h.extractUpload(c)
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}

	completion, err := h.Generator.Generate(c.Request.Context(), study.QuestionsPrompt(text))
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}

	questions, err := study.NormalizeQuestions(completion)
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}
	log.Printf("INFO: Generated %d questions (RequestID: %s)", len(questions), c.GetString(RequestIDKey))

	c.JSON(http.StatusOK, models.QuestionResponse{
		Questions: questions,
		ModelUsed: h.Generator.ModelName(),
	})
}

// HandleGenerateQuiz generates a multiple-choice quiz from an uploaded PDF.
func (h *Handler) HandleGenerateQuiz(c *gin.Context) {
	const operation, failure = "Quiz generation", "Error generating quiz"

	text, err := h.extractUpload(c)
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}

	completion, err := h.Generator.Generate(c.Request.Context(), study.QuizPrompt(text))
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}

	quiz, stage, err := study.ParseQuiz(completion)
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}
	log.Printf("INFO: Parsed quiz with %d items via %s parse (RequestID: %s)", len(quiz), stage, c.GetString(RequestIDKey))

	c.JSON(http.StatusOK, models.QuizResponse{
		ModelUsed: h.Generator.ModelName(),
		Quiz:      quiz,
	})
}
