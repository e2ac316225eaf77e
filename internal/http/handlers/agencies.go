package handlers

import (
	"net/http"
	"strings"

	intconfig "perubus/internal/config"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"

	"github.com/gin-gonic/gin"
)

type agencyPayload struct {
	Region   string `json:"departamento" binding:"required"`
	Province string `json:"provincia" binding:"required"`
	Address  string `json:"direccion" binding:"required"`
	Landmark string `json:"referencia"`
}

// GET /api/agencias (public: feeds the search form and destinations page)
func GetAgencies(c *gin.Context) {
	repo := repositories.AgencyRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/agencias
func CreateAgency(c *gin.Context) {
	var req agencyPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.AgencyRepository{DB: intconfig.DB}
	agency, err := repo.Create(models.Agency{
		Region:   strings.TrimSpace(req.Region),
		Province: strings.TrimSpace(req.Province),
		Address:  strings.TrimSpace(req.Address),
		Landmark: strings.TrimSpace(req.Landmark),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, agency)
}

// PUT /api/agencias/:id
func UpdateAgency(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req agencyPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.AgencyRepository{DB: intconfig.DB}
	agency := models.Agency{
		ID:       id,
		Region:   strings.TrimSpace(req.Region),
		Province: strings.TrimSpace(req.Province),
		Address:  strings.TrimSpace(req.Address),
		Landmark: strings.TrimSpace(req.Landmark),
	}
	if err := repo.Update(agency); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, agency)
}

// DELETE /api/agencias/:id
func DeleteAgency(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.AgencyRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
