package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JonFRutan/Orbital/models"
	"github.com/JonFRutan/Orbital/services"
	"github.com/JonFRutan/Orbital/utils"

	"github.com/gin-gonic/gin"
)

type SystemController struct {
	service *services.SystemService
}

func NewSystemController() *SystemController {
	return &SystemController{service: services.NewSystemService(utils.GetStore())}
}

// GET /api/systems
func (sc *SystemController) List(c *gin.Context) {
	systems, err := sc.service.List()
	if err != nil {
		utils.LogError(err, "list systems")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, systems)
}

// POST /api/publish
func (sc *SystemController) Publish(c *gin.Context) {
	var input models.PublishInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	system, err := sc.service.Publish(input)
	if err != nil {
		utils.LogError(err, "publish system")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, system)
}

// POST /api/click/:id
func (sc *SystemController) Click(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// Нечисловой id отвечаем так же, как на несуществующий
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	system, err := sc.service.Click(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		utils.LogError(err, "click system")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, system)
}
