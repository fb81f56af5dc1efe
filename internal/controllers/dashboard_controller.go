package controllers

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"taskly-be/internal/models"
	"taskly-be/internal/service"
)

type DashboardController struct {
	taskService service.TaskService
	logger      *log.Logger
}

func NewDashboardController(taskService service.TaskService, logger *log.Logger) *DashboardController {
	return &DashboardController{taskService: taskService, logger: logger}
}

// Show handles GET /dashboard/
func (dc *DashboardController) Show(c *gin.Context) {
	user := currentUser(c)

	stats, err := dc.taskService.Stats(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, dc.logger, err)
		return
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		Stats:    *stats,
		Today:    dc.taskService.Today(),
		DarkMode: darkMode(c),
	})
}
