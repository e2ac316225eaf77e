package handlers

import (
	"net/http"

	intconfig "perubus/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		RespondError(c, http.StatusServiceUnavailable, "base de datos no inicializada", nil)
		return
	}
	if err := intconfig.DB.Ping(); err != nil {
		RespondError(c, http.StatusServiceUnavailable, "base de datos inaccesible", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"database": "ok"})
}
