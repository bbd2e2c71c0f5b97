package stream

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoralesg/MicroTweet-Back/internal/apperror"
	"github.com/dmoralesg/MicroTweet-Back/internal/logs"
)

type streamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateStream POST /api/streams
func CreateStream(c *gin.Context) {
	var input streamRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Petición inválida"})
		return
	}

	newStream, err := Create(input.Name, input.Description)
	if err != nil {
		status := apperror.Status(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "Error al crear el stream: " + message
		}
		c.JSON(status, gin.H{"error": message})
		logs.LogJSON("WARN", "Stream creation failed", map[string]interface{}{
			"error": err.Error(),
			"route": c.FullPath(),
			"name":  input.Name,
		})
		return
	}

	c.JSON(http.StatusCreated, newStream)
	logs.LogJSON("INFO", "Stream created", map[string]interface{}{
		"route":    c.FullPath(),
		"streamID": newStream.ID,
		"name":     newStream.Name,
	})
}

// GetAllStreams GET /api/streams y GET /api/streams/public
func GetAllStreams(c *gin.Context) {
	streams, err := All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al recuperar los streams"})
		return
	}
	c.JSON(http.StatusOK, streams)
}

// GetStreamByName GET /api/streams/:name
func GetStreamByName(c *gin.Context) {
	found, err := ByName(c.Param("name"))
	if err != nil {
		c.JSON(apperror.Status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, found)
}
