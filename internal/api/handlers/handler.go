package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"studymate/internal/llm"
	"studymate/internal/models"
	"studymate/internal/pdf"
	"studymate/internal/study"

	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the per-request ID.
const RequestIDKey = "requestID"

// TextExtractor converts raw PDF bytes into plain text.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// Handler contains the API handlers dependencies.
// All fields are set once in NewHandler and only read afterwards.
type Handler struct {
	Extractor TextExtractor
	Generator llm.Generator
	// MaxUploadBytes caps the request body of upload endpoints; 0 disables the cap.
	MaxUploadBytes int64
}

// NewHandler creates a new Handler
func NewHandler(extractor TextExtractor, generator llm.Generator, maxUploadBytes int64) *Handler {
	return &Handler{
		Extractor:      extractor,
		Generator:      generator,
		MaxUploadBytes: maxUploadBytes,
	}
}

// InvalidInputError reports a request the client must fix: wrong file type,
// missing field or malformed body.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

// UploadTooLargeError reports an upload body over the configured limit.
type UploadTooLargeError struct {
	Limit int64
}

func (e *UploadTooLargeError) Error() string {
	return fmt.Sprintf("File too large: uploads are limited to %d bytes", e.Limit)
}

func invalidInput(format string, args ...any) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HandleRoot reports that the service is up and which model it uses.
func (h *Handler) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{
		Message:     "🚀 StudyMate API server is running",
		ActiveModel: h.Generator.ModelName(),
	})
}

// respondError is the single place where pipeline errors become HTTP responses.
// Client errors carry their own message; server errors are prefixed with failure,
// which names what the endpoint was trying to do.
func (h *Handler) respondError(c *gin.Context, operation, failure string, err error) {
	status, detail := classify(failure, err)
	log.Printf("ERROR: %s: %v (RequestID: %s, Status: %d)", operation, err, c.GetString(RequestIDKey), status)
	c.AbortWithStatusJSON(status, models.ErrorResponse{Detail: detail})
}

func classify(failure string, err error) (int, string) {
	var (
		inputErr   *InvalidInputError
		sizeErr    *UploadTooLargeError
		extractErr *pdf.ExtractionError
	)
	switch {
	case errors.As(err, &sizeErr):
		return http.StatusRequestEntityTooLarge, sizeErr.Error()
	case errors.As(err, &inputErr):
		return http.StatusBadRequest, inputErr.Message
	case errors.As(err, &extractErr):
		return http.StatusBadRequest, extractErr.Error()
	case errors.Is(err, pdf.ErrEmptyContent):
		return http.StatusBadRequest, pdf.ErrEmptyContent.Error()
	case errors.Is(err, study.ErrNoQuestions):
		return http.StatusInternalServerError, fmt.Sprintf("%s: %s", failure, study.ErrNoQuestions.Error())
	default:
		return http.StatusInternalServerError, fmt.Sprintf("%s: %v", failure, err)
	}
}
