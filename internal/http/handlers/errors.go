package handlers

import (
	"net/http"

	"perubus/internal/domain"
	"perubus/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondCoded(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"request_id": middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		respondCoded(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondCoded(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondCoded(c, http.StatusConflict, "conflict", err.Error())
	case domain.IsDataShape(err):
		respondCoded(c, http.StatusBadGateway, "data_shape_error", err.Error())
	case domain.IsUpstream(err):
		respondCoded(c, http.StatusBadGateway, "upstream_error", err.Error())
	default:
		respondCoded(c, http.StatusInternalServerError, "internal_error", "ocurrio un error inesperado")
	}
}
