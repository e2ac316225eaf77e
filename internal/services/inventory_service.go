package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intconfig "perubus/internal/config"
	"perubus/internal/domain"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"
	"perubus/internal/utils"
)

// InventoryService is the inventory/booking collaborator the purchase flow
// talks to, backed by MySQL. The flow only sees the port interface; tests
// substitute a fake.
type InventoryService struct {
	SeatRepo   repositories.SeatRepository
	TripRepo   repositories.TripRepository
	TicketRepo repositories.TicketRepository
	DB         *sql.DB
	RequestID  string
}

func (s InventoryService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s InventoryService) seats() repositories.SeatRepository {
	if s.SeatRepo.DB != nil {
		return s.SeatRepo
	}
	return repositories.SeatRepository{DB: s.db()}
}

func (s InventoryService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: s.db()}
}

// FetchSeatsForBus loads the seat inventory of one bus. A row missing its
// fila, an unparsable columna or an unknown estado poisons the whole load:
// the storefront renders the errored seat map instead of a half grid.
func (s InventoryService) FetchSeatsForBus(ctx context.Context, busID int64) ([]models.Seat, error) {
	seats, err := s.seats().ListByBus(busID)
	if err != nil {
		return nil, domain.UpstreamError{Op: "fetch seats", Err: err}
	}

	for _, seat := range seats {
		if seat.Row == "" {
			return nil, domain.DataShapeError{Resource: "asiento", Msg: fmt.Sprintf("asiento %d sin fila", seat.ID)}
		}
		if _, ok := seat.ColumnNumber(); !ok {
			return nil, domain.DataShapeError{Resource: "asiento", Msg: fmt.Sprintf("asiento %d con columna invalida %q", seat.ID, seat.Column)}
		}
		if _, ok := models.NormalizeSeatStatus(string(seat.Status)); !ok {
			return nil, domain.DataShapeError{Resource: "asiento", Msg: fmt.Sprintf("asiento %d con estado desconocido %q", seat.ID, seat.Status)}
		}
	}

	utils.LogEvent(s.RequestID, "inventory", "fetch_seats", fmt.Sprintf("bus_id=%d count=%d", busID, len(seats)))
	return seats, nil
}

// SubmitPurchase runs the authoritative availability check and the sale in
// one transaction. Seats are locked, re-checked and flipped to OCUPADO with
// one pasaje per seat; any conflict rolls the whole purchase back.
func (s InventoryService) SubmitPurchase(ctx context.Context, payload models.PurchasePayload) (models.PurchaseReceipt, error) {
	var receipt models.PurchaseReceipt

	if len(payload.SeatIDs) == 0 {
		return receipt, domain.ValidationError{Field: "asientosIds", Msg: "no hay asientos seleccionados"}
	}
	if len(payload.Passengers) != len(payload.SeatIDs) {
		return receipt, domain.ValidationError{Field: "pasajeros", Msg: "cantidad de pasajeros no coincide con los asientos"}
	}

	trip, err := s.trips().GetByID(payload.TripID)
	if err != nil {
		return receipt, err
	}
	if trip.RouteID != payload.RouteID {
		return receipt, domain.ValidationError{Field: "idRuta", Msg: "la ruta no corresponde al viaje"}
	}

	tx, err := s.db().BeginTx(ctx, nil)
	if err != nil {
		return receipt, domain.UpstreamError{Op: "submit purchase", Err: err}
	}
	defer tx.Rollback()

	locked, err := repositories.LockSeats(tx, payload.SeatIDs)
	if err != nil {
		return receipt, domain.UpstreamError{Op: "submit purchase", Err: err}
	}
	if len(locked) != len(payload.SeatIDs) {
		return receipt, domain.NotFoundError{Resource: "asiento"}
	}
	for _, seat := range locked {
		if seat.BusID != trip.BusID {
			return receipt, domain.ValidationError{Field: "asientosIds", Msg: fmt.Sprintf("el asiento %d no pertenece al bus del viaje", seat.ID)}
		}
		if !seat.Available() {
			// Another buyer got there first; a normal, retryable outcome.
			return receipt, domain.ConflictError{Resource: "asiento", Msg: fmt.Sprintf("el asiento %s ya no esta disponible", seat.Label)}
		}
	}

	ticketIDs := make([]int64, 0, len(payload.SeatIDs))
	for _, seatID := range payload.SeatIDs {
		id, err := repositories.InsertTicket(tx, models.Ticket{
			Price:  trip.Cost,
			TripID: trip.ID,
			SeatID: seatID,
		})
		if err != nil {
			return receipt, domain.UpstreamError{Op: "submit purchase", Err: err}
		}
		ticketIDs = append(ticketIDs, id)
	}

	if err := repositories.MarkOccupied(tx, payload.SeatIDs); err != nil {
		return receipt, domain.UpstreamError{Op: "submit purchase", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return receipt, domain.UpstreamError{Op: "submit purchase", Err: err}
	}

	utils.LogEvent(s.RequestID, "inventory", "submit_purchase",
		fmt.Sprintf("trip_id=%d seats=%d total=%.2f", trip.ID, len(payload.SeatIDs), payload.TotalToPay))

	receipt.TicketIDs = ticketIDs
	receipt.ReferenceID = trip.ID
	return receipt, nil
}

// FetchTripStatus feeds the public status-lookup bar: trip, route, bus and
// schedule only, no seat or passenger data.
func (s InventoryService) FetchTripStatus(ctx context.Context, tripID int64) (models.TripStatus, error) {
	trip, err := s.trips().GetByID(tripID)
	if err != nil {
		return models.TripStatus{}, err
	}

	return models.TripStatus{
		TripID:        trip.ID,
		Status:        statusFor(trip.DepartureDate, time.Now()),
		RouteName:     trip.Route.Name,
		BusPlate:      trip.Bus.Plate,
		DepartureDate: trip.DepartureDate,
		DepartureTime: trip.DepartureTime,
	}, nil
}

func statusFor(departureDate string, now time.Time) string {
	today := now.Format("2006-01-02")
	switch {
	case departureDate > today:
		return "PROGRAMADO"
	case departureDate == today:
		return "EN_RUTA"
	default:
		return "FINALIZADO"
	}
}
