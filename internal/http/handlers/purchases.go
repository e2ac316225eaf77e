package handlers

import (
	"net/http"
	"strconv"

	"perubus/internal/booking"
	intconfig "perubus/internal/config"
	"perubus/internal/http/middleware"
	"perubus/internal/repositories"
	"perubus/internal/services"
	"perubus/internal/ticket"
	"perubus/internal/utils"

	"github.com/gin-gonic/gin"
)

// BookingStore holds the in-flight purchase sessions. One per process.
var BookingStore = booking.NewStore()

// NewCollaborator builds the inventory port a new session talks to. Tests
// swap this out for a fake.
var NewCollaborator = func(requestID string) booking.Collaborator {
	return services.InventoryService{RequestID: requestID}
}

type createPurchasePayload struct {
	TripID int64 `json:"idViaje" binding:"required"`
}

type passengerFieldPayload struct {
	Field string `json:"campo" binding:"required"`
	Value string `json:"valor"`
}

// purchaseSnapshot is the wire view of a session returned by every mutation,
// so the storefront never has to re-fetch after acting.
func purchaseSnapshot(id string, f *booking.Flow) gin.H {
	out := gin.H{
		"idCompra":     id,
		"estado":       f.State(),
		"asientosIds":  f.SeatIDs(),
		"pasajeros":    f.Passengers(),
		"totalPagar":   f.Total(),
		"pisos":        f.Layouts(),
		"viaje":        f.Trip(),
		"confirmacion": f.Confirmation(),
	}
	if err := f.LastError(); err != nil {
		out["ultimoError"] = err.Error()
	}
	return out
}

// POST /api/compras opens a session against the chosen trip and loads its
// seat map.
func CreatePurchase(c *gin.Context) {
	var req createPurchasePayload
	if !BindJSONOrError(c, &req) {
		return
	}

	tripRepo := repositories.TripRepository{DB: intconfig.DB}
	trip, err := tripRepo.GetByID(req.TripID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	requestID := middleware.GetRequestID(c)
	s := BookingStore.Create(NewCollaborator(requestID))
	err = s.WithLock(func(f *booking.Flow) error {
		return f.SelectTrip(c.Request.Context(), trip)
	})
	if err != nil {
		utils.LogEvent(requestID, "purchases", "seats_load_failed", err.Error())
	}
	s.WithLock(func(f *booking.Flow) error {
		c.JSON(http.StatusCreated, purchaseSnapshot(s.ID, f))
		return nil
	})
}

// GET /api/compras/:id
func GetPurchase(c *gin.Context) {
	s, err := BookingStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	s.WithLock(func(f *booking.Flow) error {
		c.JSON(http.StatusOK, purchaseSnapshot(s.ID, f))
		return nil
	})
}

// POST /api/compras/:id/reintentar reloads the seat map after a failed load.
func RetryPurchaseSeats(c *gin.Context) {
	s, err := BookingStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	s.WithLock(func(f *booking.Flow) error {
		trip := f.Trip()
		if trip == nil {
			RespondError(c, http.StatusBadRequest, "la sesion no tiene un viaje seleccionado", nil)
			return nil
		}
		if err := f.SelectTrip(c.Request.Context(), *trip); err != nil {
			utils.LogEvent(middleware.GetRequestID(c), "purchases", "seats_reload_failed", err.Error())
		}
		c.JSON(http.StatusOK, purchaseSnapshot(s.ID, f))
		return nil
	})
}

// POST /api/compras/:id/asientos/:idAsiento toggles one seat in or out of
// the selection.
func TogglePurchaseSeat(c *gin.Context) {
	seatID, err := strconv.ParseInt(c.Param("idAsiento"), 10, 64)
	if err != nil || seatID <= 0 {
		RespondError(c, http.StatusBadRequest, "idAsiento invalido", nil)
		return
	}
	s, getErr := BookingStore.Get(c.Param("id"))
	if getErr != nil {
		RespondDomainError(c, getErr)
		return
	}
	s.WithLock(func(f *booking.Flow) error {
		if err := f.ToggleSeat(seatID); err != nil {
			RespondDomainError(c, err)
			return nil
		}
		c.JSON(http.StatusOK, purchaseSnapshot(s.ID, f))
		return nil
	})
}

// PUT /api/compras/:id/pasajeros/:index updates one field of one
// passenger form.
func SetPurchasePassengerField(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		RespondError(c, http.StatusBadRequest, "indice de pasajero invalido", nil)
		return
	}
	var req passengerFieldPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	s, getErr := BookingStore.Get(c.Param("id"))
	if getErr != nil {
		RespondDomainError(c, getErr)
		return
	}
	s.WithLock(func(f *booking.Flow) error {
		if err := f.SetPassengerField(index, req.Field, req.Value); err != nil {
			RespondDomainError(c, err)
			return nil
		}
		c.JSON(http.StatusOK, purchaseSnapshot(s.ID, f))
		return nil
	})
}

// POST /api/compras/:id/confirmar submits the purchase. On a collaborator
// failure the session keeps its selection so the buyer can retry.
func ConfirmPurchase(c *gin.Context) {
	s, err := BookingStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	requestID := middleware.GetRequestID(c)
	s.WithLock(func(f *booking.Flow) error {
		conf, err := f.Submit(c.Request.Context())
		if err != nil {
			RespondDomainError(c, err)
			return nil
		}
		utils.LogEvent(requestID, "purchases", "confirmed",
			"trip_id="+strconv.FormatInt(conf.ReferenceID, 10)+
				" seats="+strconv.Itoa(len(conf.SeatLabels)))
		c.JSON(http.StatusOK, purchaseSnapshot(s.ID, f))
		return nil
	})
}

// GET /api/compras/:id/boleto serves the confirmed purchase as a PDF.
func DownloadPurchaseTicket(c *gin.Context) {
	s, err := BookingStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var data ticket.Data
	var confirmed bool
	s.WithLock(func(f *booking.Flow) error {
		conf := f.Confirmation()
		if conf == nil {
			return nil
		}
		confirmed = true
		data = ticket.Data{
			TripID:        conf.ReferenceID,
			RouteName:     conf.RouteName,
			DepartureDate: conf.DepartureDate,
			DepartureTime: conf.DepartureTime,
			BusPlate:      conf.BusPlate,
			SeatLabels:    conf.SeatLabels,
			Passengers:    conf.Passengers,
			Total:         conf.TotalPaid,
		}
		return nil
	})
	if !confirmed {
		RespondError(c, http.StatusConflict, "la compra aun no esta confirmada", nil)
		return
	}

	pdf, filename, err := ticket.BuildTicketPDF(data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// POST /api/compras/:id/finalizar acknowledges the confirmation (or abandons
// the purchase) and discards the session.
func FinishPurchase(c *gin.Context) {
	s, err := BookingStore.Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	s.WithLock(func(f *booking.Flow) error {
		if f.Confirmation() != nil {
			f.Acknowledge()
		} else {
			f.Cancel()
		}
		return nil
	})
	BookingStore.Delete(s.ID)
	c.Status(http.StatusNoContent)
}
