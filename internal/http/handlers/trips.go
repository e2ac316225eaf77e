package handlers

import (
	"net/http"

	intconfig "perubus/internal/config"
	"perubus/internal/domain/models"
	"perubus/internal/http/middleware"
	"perubus/internal/repositories"
	"perubus/internal/services"

	"github.com/gin-gonic/gin"
)

type tripPayload struct {
	DepartureTime string  `json:"horaSalida" binding:"required"`
	DepartureDate string  `json:"fechaSalida" binding:"required"`
	Cost          float64 `json:"costo" binding:"required"`
	RouteID       int64   `json:"idRuta" binding:"required"`
	BusID         int64   `json:"idBus" binding:"required"`
}

type tripSearchPayload struct {
	Date    string `json:"fecha" binding:"required"`
	RouteID int64  `json:"idRuta" binding:"required"`
}

// GET /api/viajes
func GetTrips(c *gin.Context) {
	repo := repositories.TripRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/viajes/:id
func GetTripByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.TripRepository{DB: intconfig.DB}
	trip, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// POST /api/viajes/buscar-viajes: storefront search, decorated with the
// per-trip seat availability counters.
func SearchTrips(c *gin.Context) {
	var req tripSearchPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.TripService{RequestID: middleware.GetRequestID(c)}
	trips, err := svc.Search(req.Date, req.RouteID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GET /api/viajes/:id/estado: public status lookup, no seat data.
func GetTripStatus(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	svc := services.InventoryService{RequestID: middleware.GetRequestID(c)}
	status, err := svc.FetchTripStatus(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// POST /api/viajes
func CreateTrip(c *gin.Context) {
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.TripRepository{DB: intconfig.DB}
	created, err := repo.Create(models.Trip{
		DepartureTime: req.DepartureTime,
		DepartureDate: req.DepartureDate,
		Cost:          req.Cost,
		RouteID:       req.RouteID,
		BusID:         req.BusID,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /api/viajes/:id
func UpdateTrip(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req tripPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	trip := models.Trip{
		ID:            id,
		DepartureTime: req.DepartureTime,
		DepartureDate: req.DepartureDate,
		Cost:          req.Cost,
		RouteID:       req.RouteID,
		BusID:         req.BusID,
	}
	repo := repositories.TripRepository{DB: intconfig.DB}
	if err := repo.Update(trip); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, trip)
}

// DELETE /api/viajes/:id
func DeleteTrip(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.TripRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
