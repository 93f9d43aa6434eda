package handlers

import (
	"net/http"

	"lillia/models"

	"github.com/gin-gonic/gin"
)

// ListProgramsHandler returns the fixed program catalog.
func ListProgramsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"programs": models.ProgramCatalog})
}
