package api

import (
	"net/http"

	"studymate/internal/api/handlers"
	"studymate/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up the API routes
func SetupRoutes(router *gin.Engine, handler *handlers.Handler, allowedOrigins []string) {
	router.Use(RequestID())
	router.Use(CORSMiddleware(allowedOrigins))

	router.GET("/", handler.HandleRoot)
	router.POST("/generate", handler.HandleGenerate)                      // Free-text prompt
	router.POST("/important_questions", handler.HandleImportantQuestions) // PDF -> exam questions
	router.POST("/process_pdf", handler.HandleProcessPDF)                 // PDF -> summary
	router.POST("/quiz", handler.HandleGenerateQuiz)                      // PDF -> multiple-choice quiz

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Detail: "Not Found"})
	})
}
