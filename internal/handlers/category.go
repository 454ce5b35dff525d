package handlers

import (
	"net/http"
	"strconv"

	"github.com/SYH32/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	triviaService *services.TriviaService
}

func NewCategoryHandler(triviaService *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{triviaService: triviaService}
}

type CategoriesResponse struct {
	Success    bool            `json:"success" example:"true"`
	Categories map[uint]string `json:"categories"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  Every category as an id to type mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.triviaService.Categories(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Success: true, Categories: categories})
}

// QuestionsByCategory godoc
// @Summary      List questions of a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        page query int false "Page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithStatus(c, http.StatusNotFound)
		return
	}
	current := uint(categoryID)

	page, err := h.triviaService.QuestionsByCategory(c.Request.Context(), current, pageParam(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questionsResponse(page, &current))
}
