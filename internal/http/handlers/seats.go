package handlers

import (
	"fmt"
	"net/http"
	"strings"

	intconfig "perubus/internal/config"
	"perubus/internal/domain/models"
	"perubus/internal/http/middleware"
	"perubus/internal/repositories"
	"perubus/internal/seatmap"
	"perubus/internal/utils"

	"github.com/gin-gonic/gin"
)

type seatPayload struct {
	Floor  int    `json:"piso" binding:"required"`
	Row    string `json:"fila" binding:"required"`
	Column string `json:"columna" binding:"required"`
	Label  string `json:"descripcion"`
	Status string `json:"estado"`
	BusID  int64  `json:"idBus"`
}

func (p seatPayload) toSeat() (models.Seat, bool) {
	status := models.SeatAvailable
	if strings.TrimSpace(p.Status) != "" {
		s, ok := models.NormalizeSeatStatus(p.Status)
		if !ok {
			return models.Seat{}, false
		}
		status = s
	}
	seat := models.Seat{
		BusID:  p.BusID,
		Floor:  p.Floor,
		Row:    strings.ToUpper(strings.TrimSpace(p.Row)),
		Column: strings.TrimSpace(p.Column),
		Label:  strings.TrimSpace(p.Label),
		Status: status,
	}
	if seat.Label == "" {
		seat.Label = seat.Row + seat.Column
	}
	if _, ok := seat.ColumnNumber(); !ok {
		return models.Seat{}, false
	}
	return seat, true
}

// GET /api/asientos
func GetSeats(c *gin.Context) {
	repo := repositories.SeatRepository{DB: intconfig.DB}
	list, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/asientos/bus/:idBus returns raw records plus the computed floor grids.
func GetSeatsByBus(c *gin.Context) {
	busID, ok := PathID(c, "idBus")
	if !ok {
		return
	}
	repo := repositories.SeatRepository{DB: intconfig.DB}
	seats, err := repo.ListByBus(busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"asientos": seats,
		"pisos":    seatmap.ComputeFloorLayouts(seats),
	})
}

// GET /api/asientos/:id
func GetSeatByID(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.SeatRepository{DB: intconfig.DB}
	seat, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, seat)
}

// GET /api/asientos/bus/:idBus/disponibles
func GetAvailableSeatsByBus(c *gin.Context) {
	busID, ok := PathID(c, "idBus")
	if !ok {
		return
	}
	repo := repositories.SeatRepository{DB: intconfig.DB}
	seats, err := repo.ListByBus(busID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	available := make([]models.Seat, 0, len(seats))
	for _, s := range seats {
		if s.Available() {
			available = append(available, s)
		}
	}
	c.JSON(http.StatusOK, available)
}

// POST /api/asientos
func CreateSeat(c *gin.Context) {
	var req seatPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BusID <= 0 {
		RespondError(c, http.StatusBadRequest, "idBus es obligatorio", nil)
		return
	}
	seat, ok := req.toSeat()
	if !ok {
		RespondError(c, http.StatusBadRequest, "columna o estado invalido", nil)
		return
	}
	repo := repositories.SeatRepository{DB: intconfig.DB}
	created, err := repo.Create(seat)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type seatBatchPayload struct {
	BusID int64         `json:"idBus" binding:"required"`
	Seats []seatPayload `json:"asientos" binding:"required"`
}

// POST /api/asientos/lote provisions a bus in one all-or-nothing
// transaction instead of N sequential creates.
func CreateSeatBatch(c *gin.Context) {
	var req seatBatchPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.Seats) == 0 {
		RespondError(c, http.StatusBadRequest, "la lista de asientos esta vacia", nil)
		return
	}

	seats := make([]models.Seat, 0, len(req.Seats))
	for i, p := range req.Seats {
		p.BusID = req.BusID
		seat, ok := p.toSeat()
		if !ok {
			RespondError(c, http.StatusBadRequest,
				fmt.Sprintf("columna o estado invalido en el asiento %d", i+1), nil)
			return
		}
		seats = append(seats, seat)
	}

	repo := repositories.SeatRepository{DB: intconfig.DB}
	created, err := repo.CreateBatch(req.BusID, seats)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "seats", "batch_create",
		fmt.Sprintf("bus_id=%d count=%d", req.BusID, len(created)))
	c.JSON(http.StatusCreated, created)
}

// PUT /api/asientos/:id
func UpdateSeat(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	var req seatPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.BusID <= 0 {
		RespondError(c, http.StatusBadRequest, "idBus es obligatorio", nil)
		return
	}
	seat, valid := req.toSeat()
	if !valid {
		RespondError(c, http.StatusBadRequest, "columna o estado invalido", nil)
		return
	}
	seat.ID = id
	repo := repositories.SeatRepository{DB: intconfig.DB}
	if err := repo.Update(seat); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, seat)
}

// DELETE /api/asientos/:id
func DeleteSeat(c *gin.Context) {
	id, ok := PathID(c, "id")
	if !ok {
		return
	}
	repo := repositories.SeatRepository{DB: intconfig.DB}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
