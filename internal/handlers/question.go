package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/SYH32/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	triviaService *services.TriviaService
}

func NewQuestionHandler(triviaService *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{triviaService: triviaService}
}

type CreateQuestionRequest struct {
	Question   *string      `json:"question" binding:"required" example:"Who discovered penicillin?"`
	Answer     *string      `json:"answer" binding:"required" example:"Alexander Fleming"`
	Difficulty *FlexibleInt `json:"difficulty" binding:"required" swaggertype:"integer" example:"3"`
	Category   *FlexibleInt `json:"category" binding:"required" swaggertype:"integer" example:"1"`
}

type CreateQuestionResponse struct {
	Success bool   `json:"success" example:"true"`
	Created string `json:"created" example:"New Question Created with ID 24"`
}

// CreateQuestionFailure is returned with status 200 when the insert itself
// fails after the request was accepted.
type CreateQuestionFailure struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"create question: database is locked"`
}

type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm" example:"title"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  All questions ordered by id, ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := h.triviaService.ListQuestions(c.Request.Context(), pageParam(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionsResponse(page, nil))
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	if err := h.triviaService.DeleteQuestion(c.Request.Context(), uint(questionID)); err != nil {
		if !errors.Is(err, services.ErrNotFound) {
			c.Error(err)
		}
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Question with ID %d is deleted", questionID),
	})
}

// CreateQuestion godoc
// @Summary      Create a question
// @Description  All four fields are required. A storage failure is reported with status 200 and success=false.
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} CreateQuestionResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}
	if *req.Category < 0 {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.triviaService.CreateQuestion(c.Request.Context(), services.QuestionInput{
		Question:   *req.Question,
		Answer:     *req.Answer,
		Difficulty: int(*req.Difficulty),
		Category:   uint(*req.Category),
	})
	if err != nil {
		c.Error(err)
		c.JSON(http.StatusOK, CreateQuestionFailure{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, CreateQuestionResponse{
		Success: true,
		Created: fmt.Sprintf("New Question Created with ID %d", question.ID),
	})
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on the question text, ten per page
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        request body SearchQuestionsRequest true "Search term"
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}

	page, err := h.triviaService.SearchQuestions(c.Request.Context(), term, pageParam(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionsResponse(page, nil))
}
