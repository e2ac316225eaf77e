package handlers

import (
	"net/http"

	intconfig "perubus/internal/config"
	"perubus/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/pasajes
func GetTickets(c *gin.Context) {
	repo := repositories.TicketRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/pasajes/:id
func GetTicketByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.TicketRepository{DB: intconfig.DB}
	ticket, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// GET /api/pasajes/usuario/:idUsuario
func GetTicketsByUser(c *gin.Context) {
	userID, ok := PathID(c, "idUsuario")
	if !ok {
		return
	}
	repo := repositories.TicketRepository{DB: intconfig.DB}
	list, err := repo.ListByUser(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
