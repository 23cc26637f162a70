package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"studymate/internal/pdf"

	"github.com/gin-gonic/gin"
)

// uploadField is the multipart form field carrying the document.
const uploadField = "file"

// extractUpload validates the uploaded file name, reads the file and extracts its text.
// Nothing is read or parsed unless the name ends in .pdf.
func (h *Handler) extractUpload(c *gin.Context) (string, error) {
	if h.MaxUploadBytes > 0 {
		if c.Request.ContentLength > h.MaxUploadBytes {
			return "", &UploadTooLargeError{Limit: h.MaxUploadBytes}
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", &UploadTooLargeError{Limit: h.MaxUploadBytes}
		}
		return "", invalidInput("A PDF file is required in the '%s' form field", uploadField)
	}
	if !pdf.IsPDF(fileHeader.Filename) {
		return "", invalidInput("Only PDF files are supported")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file %s: %w", fileHeader.Filename, err)
	}
	log.Printf("INFO: Received %s (%d bytes) (RequestID: %s)", fileHeader.Filename, len(data), c.GetString(RequestIDKey))

	text, err := h.Extractor.Extract(data)
	if err != nil {
		return "", err
	}
	return text, nil
}
