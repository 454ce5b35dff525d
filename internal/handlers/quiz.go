package handlers

import (
	"net/http"

	"github.com/SYH32/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	triviaService *services.TriviaService
}

func NewQuizHandler(triviaService *services.TriviaService) *QuizHandler {
	return &QuizHandler{triviaService: triviaService}
}

type QuizCategory struct {
	ID   *FlexibleInt `json:"id" binding:"required" swaggertype:"integer" example:"0"`
	Type string       `json:"type" example:"click"`
}

type QuizRequest struct {
	PreviousQuestions *[]FlexibleInt `json:"previous_questions" binding:"required" swaggertype:"array,integer"`
	QuizCategory      *QuizCategory  `json:"quiz_category" binding:"required"`
}

type QuizResponse struct {
	Success  bool      `json:"success" example:"true"`
	Question *Question `json:"question"`
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  A random question not in previous_questions. quiz_category.id 0 draws from all categories. question is null when none remain.
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}
	categoryID := *req.QuizCategory.ID
	if categoryID < 0 {
		abortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	// Ids that cannot exist exclude nothing.
	previous := make([]uint, 0, len(*req.PreviousQuestions))
	for _, id := range *req.PreviousQuestions {
		if id > 0 {
			previous = append(previous, uint(id))
		}
	}

	question, err := h.triviaService.NextQuizQuestion(c.Request.Context(), previous, uint(categoryID))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuizResponse{Success: true, Question: question})
}
