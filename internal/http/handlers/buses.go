package handlers

import (
	"net/http"
	"strings"

	intconfig "perubus/internal/config"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"

	"github.com/gin-gonic/gin"
)

type busPayload struct {
	Plate    string `json:"placa" binding:"required"`
	DriverID int64  `json:"idConductor" binding:"required"`
}

// GET /api/buses
func GetBuses(c *gin.Context) {
	repo := repositories.BusRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/buses/:id
func GetBusByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.BusRepository{DB: intconfig.DB}
	bus, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// GET /api/buses/placa/:placa
func GetBusByPlate(c *gin.Context) {
	plate := strings.TrimSpace(c.Param("placa"))
	if plate == "" {
		RespondError(c, http.StatusBadRequest, "placa requerida", nil)
		return
	}
	repo := repositories.BusRepository{DB: intconfig.DB}
	bus, err := repo.GetByPlate(plate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /api/buses
func CreateBus(c *gin.Context) {
	var req busPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.BusRepository{DB: intconfig.DB}
	bus, err := repo.Create(models.Bus{
		Plate:    strings.ToUpper(strings.TrimSpace(req.Plate)),
		DriverID: req.DriverID,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bus)
}

// PUT /api/buses/:id
func UpdateBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req busPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.BusRepository{DB: intconfig.DB}
	if err := repo.Update(models.Bus{
		ID:       id,
		Plate:    strings.ToUpper(strings.TrimSpace(req.Plate)),
		DriverID: req.DriverID,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	bus, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// DELETE /api/buses/:id
func DeleteBus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.BusRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
