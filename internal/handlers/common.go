package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SYH32/trivia-api/internal/models"
	"github.com/SYH32/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not Found"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Question with ID 5 is deleted"`
}

type QuestionsResponse struct {
	Success         bool            `json:"success" example:"true"`
	Questions       []Question      `json:"questions"`
	TotalQuestions  int             `json:"total_questions" example:"19"`
	Categories      map[uint]string `json:"categories"`
	CurrentCategory *uint           `json:"current_category"`
}

// Type aliases so swag can resolve models in annotations.
type Question = models.Question
type Category = models.Category

var errorMessages = map[int]string{
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable Request",
	http.StatusInternalServerError: "Internal Server Error",
	http.StatusServiceUnavailable:  "Service Unavailable",
}

func abortWithStatus(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: status, Message: message})
}

// NotFound and MethodNotAllowed back the engine's NoRoute and NoMethod hooks.
func NotFound(c *gin.Context) {
	abortWithStatus(c, http.StatusNotFound)
}

func MethodNotAllowed(c *gin.Context) {
	abortWithStatus(c, http.StatusMethodNotAllowed)
}

// abortWithServiceError maps ErrNotFound to 404 and anything else to 500.
func abortWithServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNotFound) {
		abortWithStatus(c, http.StatusNotFound)
		return
	}
	c.Error(err)
	abortWithStatus(c, http.StatusInternalServerError)
}

// pageParam reads ?page=, falling back to the first page when it is
// missing or not an integer.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func questionsResponse(page *services.QuestionPage, current *uint) QuestionsResponse {
	return QuestionsResponse{
		Success:         true,
		Questions:       page.Questions,
		TotalQuestions:  page.TotalQuestions,
		Categories:      page.Categories,
		CurrentCategory: current,
	}
}

// FlexibleInt accepts a JSON number or a string holding an integer. Browser
// forms and object keys arrive as strings, so ids and difficulty use it.
type FlexibleInt int64

func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}
