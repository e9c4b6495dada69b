package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guidechat/internal/models/response_models"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (h *HealthController) LivenessHandler(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{Status: "ok"})
}
