package handlers

import (
	"net/http"
	"strings"

	"studymate/internal/models"
	"studymate/internal/study"

	"github.com/gin-gonic/gin"
)

// HandleGenerate forwards a free-text prompt to the model.
func (h *Handler) HandleGenerate(c *gin.Context) {
	const operation, failure = "Generate response", "Error generating response"

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		h.respondError(c, operation, failure, invalidInput("A non-empty 'prompt' field is required"))
		return
	}

	completion, err := h.Generator.Generate(c.Request.Context(), req.Prompt)
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateResponse{
		ModelUsed: h.Generator.ModelName(),
		Result:    strings.TrimSpace(completion),
	})
}

// HandleProcessPDF summarizes an uploaded PDF.
func (h *Handler) HandleProcessPDF(c *gin.Context) {
	const operation, failure = "Process PDF", "Error processing PDF"

	text, err := h.extractUpload(c)
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}

	completion, err := h.Generator.Generate(c.Request.Context(), study.SummaryPrompt(text))
	if err != nil {
		h.respondError(c, operation, failure, err)
		return
	}

	c.JSON(http.StatusOK, models.GenerateResponse{
		ModelUsed: h.Generator.ModelName(),
		Result:    study.NormalizeSummary(completion),
	})
}
