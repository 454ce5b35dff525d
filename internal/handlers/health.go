package handlers

import (
	"net/http"

	"github.com/SYH32/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	triviaService *services.TriviaService
}

func NewHealthHandler(triviaService *services.TriviaService) *HealthHandler {
	return &HealthHandler{triviaService: triviaService}
}

type HealthResponse struct {
	Success bool   `json:"success" example:"true"`
	Status  string `json:"status" example:"ok"`
}

// Health godoc
// @Summary      Liveness and database check
// @Tags         ops
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.triviaService.Ping(c.Request.Context()); err != nil {
		c.Error(err)
		abortWithStatus(c, http.StatusServiceUnavailable)
		return
	}
	c.JSON(http.StatusOK, HealthResponse{Success: true, Status: "ok"})
}
