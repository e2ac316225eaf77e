package booking

import (
	"context"
	"strconv"
	"strings"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
	"perubus/internal/seatmap"
)

// State names the steps of the purchase flow.
type State string

const (
	StateBrowsing             State = "BUSCANDO"
	StateTripSelected         State = "VIAJE_SELECCIONADO"
	StateSeatsLoading         State = "CARGANDO_ASIENTOS"
	StateSeatsReady           State = "ASIENTOS_LISTOS"
	StatePassengersIncomplete State = "PASAJEROS_INCOMPLETOS"
	StateReadyToSubmit        State = "LISTO_PARA_CONFIRMAR"
	StateSubmitting           State = "CONFIRMANDO"
	StateConfirmed            State = "CONFIRMADO"
	StateError                State = "ERROR"
)

// Collaborator is the external inventory/booking service the flow talks to.
// Injected so tests can substitute a fake.
type Collaborator interface {
	FetchSeatsForBus(ctx context.Context, busID int64) ([]models.Seat, error)
	SubmitPurchase(ctx context.Context, payload models.PurchasePayload) (models.PurchaseReceipt, error)
	FetchTripStatus(ctx context.Context, tripID int64) (models.TripStatus, error)
}

// Flow drives one booking session. It is not safe for concurrent use; the
// session store serializes access, and a session is owned by a single buyer.
type Flow struct {
	collab Collaborator

	trip       *models.Trip
	seats      []models.Seat
	seatByID   map[int64]models.Seat
	manifest   Manifest
	submitting bool
	loadFailed bool
	lastErr    error

	confirmation *models.Confirmation
}

func NewFlow(collab Collaborator) *Flow {
	return &Flow{collab: collab}
}

// State derives the current flow step. Transient steps (loading, submitting)
// only show up while the corresponding call is outstanding.
func (f *Flow) State() State {
	switch {
	case f.confirmation != nil:
		return StateConfirmed
	case f.submitting:
		return StateSubmitting
	case f.trip == nil:
		return StateBrowsing
	case f.loadFailed:
		return StateError
	case f.seats == nil:
		return StateSeatsLoading
	case f.manifest.Len() == 0:
		return StateSeatsReady
	case !f.manifest.Complete():
		return StatePassengersIncomplete
	default:
		return StateReadyToSubmit
	}
}

// SelectTrip starts a fresh booking for the given trip. Any prior selection,
// passengers or confirmation is dropped first so nothing leaks between
// trips. Re-selecting the same trip after a load failure is the retry path.
func (f *Flow) SelectTrip(ctx context.Context, trip models.Trip) error {
	f.reset()
	f.trip = &trip

	seats, err := f.collab.FetchSeatsForBus(ctx, trip.BusID)
	if err != nil {
		f.loadFailed = true
		f.lastErr = err
		return err
	}

	f.seats = seats
	f.seatByID = make(map[int64]models.Seat, len(seats))
	for _, s := range seats {
		f.seatByID[s.ID] = s
	}
	return nil
}

// Layouts computes the renderable floor grids from the loaded seat set.
func (f *Flow) Layouts() []seatmap.FloorLayout {
	return seatmap.ComputeFloorLayouts(f.seats)
}

// ToggleSeat flips the selection state of one seat. Unknown seats are a
// validation error; non-available seats are silently ignored.
func (f *Flow) ToggleSeat(seatID int64) error {
	if f.submitting || f.confirmation != nil {
		return domain.ConflictError{Resource: "sesion", Msg: "la compra ya fue enviada"}
	}
	if f.seats == nil {
		return domain.ValidationError{Field: "sesion", Msg: "los asientos aun no se han cargado"}
	}
	seat, ok := f.seatByID[seatID]
	if !ok {
		return domain.ValidationError{Field: "idAsiento", Msg: "el asiento no pertenece a este bus"}
	}
	f.manifest.Toggle(seat)
	return nil
}

func (f *Flow) SetPassengerField(index int, field, value string) error {
	if f.submitting || f.confirmation != nil {
		return domain.ConflictError{Resource: "sesion", Msg: "la compra ya fue enviada"}
	}
	return f.manifest.SetPassengerField(index, field, value)
}

// Total is always flat per-seat pricing: trip cost times selected seats.
func (f *Flow) Total() float64 {
	if f.trip == nil {
		return 0
	}
	return f.trip.Cost * float64(f.manifest.Len())
}

// Submit sends the purchase to the collaborator. Only legal from
// ReadyToSubmit; a failed submit keeps all entered data so the buyer can
// retry. A successful submit freezes the session into a confirmation.
func (f *Flow) Submit(ctx context.Context) (models.Confirmation, error) {
	if st := f.State(); st != StateReadyToSubmit {
		return models.Confirmation{}, domain.ValidationError{
			Field: "sesion",
			Msg:   "la compra no esta lista para confirmar (estado " + string(st) + ")",
		}
	}

	passengers, err := f.purchasePassengers()
	if err != nil {
		return models.Confirmation{}, err
	}

	payload := models.PurchasePayload{
		TotalToPay: f.Total(),
		Passengers: passengers,
		RouteID:    f.trip.RouteID,
		TripID:     f.trip.ID,
		SeatIDs:    f.manifest.SeatIDs(),
	}

	f.submitting = true
	receipt, err := f.collab.SubmitPurchase(ctx, payload)
	f.submitting = false
	if err != nil {
		// Seat may have been taken by another buyer between load and
		// submit; that is a normal failure, not a crash. Data stays.
		f.lastErr = err
		return models.Confirmation{}, err
	}

	ref := receipt.ReferenceID
	if ref == 0 {
		ref = f.trip.ID
	}
	conf := models.Confirmation{
		ReferenceID:   ref,
		RouteName:     routeName(f.trip),
		DepartureDate: f.trip.DepartureDate,
		DepartureTime: f.trip.DepartureTime,
		BusPlate:      busPlate(f.trip),
		SeatLabels:    f.manifest.SeatLabels(),
		Passengers:    f.manifest.Passengers(),
		TotalPaid:     payload.TotalToPay,
	}
	f.confirmation = &conf
	f.lastErr = nil
	return conf, nil
}

// Acknowledge is the buyer closing the confirmation screen: everything is
// cleared and the flow is back to browsing.
func (f *Flow) Acknowledge() {
	f.reset()
}

// Cancel abandons the session from any state.
func (f *Flow) Cancel() {
	f.reset()
}

func (f *Flow) Trip() *models.Trip { return f.trip }

func (f *Flow) Confirmation() *models.Confirmation { return f.confirmation }

func (f *Flow) LastError() error { return f.lastErr }

func (f *Flow) SeatIDs() []int64 { return f.manifest.SeatIDs() }

func (f *Flow) Passengers() []models.Passenger { return f.manifest.Passengers() }

func (f *Flow) purchasePassengers() ([]models.PurchasePassenger, error) {
	src := f.manifest.Passengers()
	out := make([]models.PurchasePassenger, 0, len(src))
	for i, p := range src {
		age, err := strconv.Atoi(strings.TrimSpace(p.Age))
		if err != nil || age < 0 {
			return nil, domain.ValidationError{
				Field: "edad",
				Msg:   "edad invalida para el pasajero " + strconv.Itoa(i+1),
			}
		}
		out = append(out, models.PurchasePassenger{
			DocumentID: strings.TrimSpace(p.DocumentID),
			FirstNames: strings.TrimSpace(p.FirstNames),
			LastNames:  strings.TrimSpace(p.LastNames),
			Age:        age,
		})
	}
	return out, nil
}

func (f *Flow) reset() {
	f.trip = nil
	f.seats = nil
	f.seatByID = nil
	f.manifest.Clear()
	f.submitting = false
	f.loadFailed = false
	f.lastErr = nil
	f.confirmation = nil
}

func routeName(t *models.Trip) string {
	if t.Route != nil {
		return t.Route.Name
	}
	return ""
}

func busPlate(t *models.Trip) string {
	if t.Bus != nil {
		return t.Bus.Plate
	}
	return ""
}
