package handlers

import (
	"net/http"
	"strings"

	intconfig "perubus/internal/config"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"

	"github.com/gin-gonic/gin"
)

type driverPayload struct {
	FirstName     string `json:"nombre" binding:"required"`
	LastName      string `json:"apellido" binding:"required"`
	DocumentID    string `json:"dni" binding:"required"`
	LicenseNumber string `json:"numeroLicenciaConduccion" binding:"required"`
}

// GET /api/conductores
func GetDrivers(c *gin.Context) {
	repo := repositories.DriverRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/conductores/:id
func GetDriverByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.DriverRepository{DB: intconfig.DB}
	driver, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// POST /api/conductores
func CreateDriver(c *gin.Context) {
	var req driverPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.DriverRepository{DB: intconfig.DB}
	driver, err := repo.Create(models.Driver{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		DocumentID:    strings.TrimSpace(req.DocumentID),
		LicenseNumber: strings.TrimSpace(req.LicenseNumber),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

// PUT /api/conductores/:id
func UpdateDriver(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req driverPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.DriverRepository{DB: intconfig.DB}
	driver := models.Driver{
		ID:            id,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		DocumentID:    strings.TrimSpace(req.DocumentID),
		LicenseNumber: strings.TrimSpace(req.LicenseNumber),
	}
	if err := repo.Update(driver); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, driver)
}

// DELETE /api/conductores/:id
func DeleteDriver(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.DriverRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
