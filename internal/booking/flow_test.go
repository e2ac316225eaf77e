package booking

import (
	"context"
	"errors"
	"testing"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

type fakeCollaborator struct {
	seats     []models.Seat
	seatsErr  error
	receipt   models.PurchaseReceipt
	submitErr error

	lastPayload models.PurchasePayload
	submits     int
}

func (f *fakeCollaborator) FetchSeatsForBus(ctx context.Context, busID int64) ([]models.Seat, error) {
	if f.seatsErr != nil {
		return nil, f.seatsErr
	}
	return f.seats, nil
}

func (f *fakeCollaborator) SubmitPurchase(ctx context.Context, payload models.PurchasePayload) (models.PurchaseReceipt, error) {
	f.submits++
	f.lastPayload = payload
	if f.submitErr != nil {
		return models.PurchaseReceipt{}, f.submitErr
	}
	return f.receipt, nil
}

func (f *fakeCollaborator) FetchTripStatus(ctx context.Context, tripID int64) (models.TripStatus, error) {
	return models.TripStatus{TripID: tripID, Status: "PROGRAMADO"}, nil
}

func testTrip() models.Trip {
	return models.Trip{
		ID:            9,
		DepartureTime: "22:30",
		DepartureDate: "2026-09-15",
		Cost:          45.50,
		RouteID:       3,
		BusID:         4,
		Route:         &models.Route{ID: 3, Name: "Lima - Arequipa"},
		Bus:           &models.Bus{ID: 4, Plate: "ABC-123"},
	}
}

func testSeats() []models.Seat {
	return []models.Seat{
		{ID: 1, BusID: 4, Floor: 1, Row: "A", Column: "1", Label: "A1", Status: models.SeatAvailable},
		{ID: 2, BusID: 4, Floor: 1, Row: "A", Column: "2", Label: "A2", Status: models.SeatOccupied},
		{ID: 3, BusID: 4, Floor: 1, Row: "B", Column: "1", Label: "B1", Status: models.SeatAvailable},
		{ID: 4, BusID: 4, Floor: 1, Row: "B", Column: "2", Label: "B2", Status: models.SeatAvailable},
	}
}

func fillPassenger(t *testing.T, f *Flow, index int, dni, nombres, apellidos, edad string) {
	t.Helper()
	for field, value := range map[string]string{
		"dni": dni, "nombres": nombres, "apellidos": apellidos, "edad": edad,
	} {
		if err := f.SetPassengerField(index, field, value); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
}

func TestFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{
		seats:   testSeats(),
		receipt: models.PurchaseReceipt{TicketIDs: []int64{501, 502, 503}, ReferenceID: 9},
	}
	f := NewFlow(collab)

	if f.State() != StateBrowsing {
		t.Fatalf("initial state = %s", f.State())
	}
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	if f.State() != StateSeatsReady {
		t.Fatalf("after load: state = %s", f.State())
	}

	for _, id := range []int64{1, 3, 4} {
		if err := f.ToggleSeat(id); err != nil {
			t.Fatalf("toggle %d: %v", id, err)
		}
	}
	if f.State() != StatePassengersIncomplete {
		t.Fatalf("after selection: state = %s", f.State())
	}
	if got := f.Total(); got != 136.50 {
		t.Fatalf("total = %v, want 136.50", got)
	}

	fillPassenger(t, f, 0, "11111111", "Ana", "Flores", "28")
	fillPassenger(t, f, 1, "22222222", "Luis", "Quispe", "34")
	if f.State() != StatePassengersIncomplete {
		t.Fatalf("with one blank passenger: state = %s", f.State())
	}
	fillPassenger(t, f, 2, "33333333", "Maria", "Huaman", "52")
	if f.State() != StateReadyToSubmit {
		t.Fatalf("all passengers complete: state = %s", f.State())
	}

	conf, err := f.Submit(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if f.State() != StateConfirmed {
		t.Fatalf("after submit: state = %s", f.State())
	}

	p := collab.lastPayload
	if p.TotalToPay != 136.50 || p.RouteID != 3 || p.TripID != 9 {
		t.Fatalf("payload header wrong: %+v", p)
	}
	if len(p.SeatIDs) != 3 || p.SeatIDs[0] != 1 || p.SeatIDs[1] != 3 || p.SeatIDs[2] != 4 {
		t.Fatalf("payload seat ids: %v", p.SeatIDs)
	}
	if p.Passengers[0].Age != 28 || p.Passengers[2].Age != 52 {
		t.Fatalf("ages not parsed: %+v", p.Passengers)
	}

	if conf.ReferenceID != 9 || conf.RouteName != "Lima - Arequipa" || conf.BusPlate != "ABC-123" {
		t.Fatalf("confirmation header: %+v", conf)
	}
	if len(conf.SeatLabels) != 3 || conf.SeatLabels[0] != "A1" {
		t.Fatalf("confirmation seat labels: %v", conf.SeatLabels)
	}
	if conf.TotalPaid != 136.50 {
		t.Fatalf("confirmation total = %v", conf.TotalPaid)
	}
}

func TestFlowSeatLoadFailureIsRetryable(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{seatsErr: errors.New("inventario no disponible")}
	f := NewFlow(collab)

	if err := f.SelectTrip(ctx, testTrip()); err == nil {
		t.Fatal("expected load error")
	}
	if f.State() != StateError {
		t.Fatalf("after failed load: state = %s", f.State())
	}
	if err := f.ToggleSeat(1); !domain.IsValidation(err) {
		t.Fatalf("toggle without seats: got %v", err)
	}

	// User-initiated retry: re-select the same trip once the collaborator
	// recovers.
	collab.seatsErr = nil
	collab.seats = testSeats()
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	if f.State() != StateSeatsReady {
		t.Fatalf("after retry: state = %s", f.State())
	}
	if f.LastError() != nil {
		t.Fatalf("stale error kept: %v", f.LastError())
	}
}

func TestFlowToggleGuards(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{seats: testSeats()}
	f := NewFlow(collab)
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}

	if err := f.ToggleSeat(99); !domain.IsValidation(err) {
		t.Fatalf("unknown seat: got %v", err)
	}
	if err := f.ToggleSeat(2); err != nil {
		t.Fatalf("occupied seat toggle should not error: %v", err)
	}
	if len(f.SeatIDs()) != 0 {
		t.Fatalf("occupied seat got selected: %v", f.SeatIDs())
	}
}

func TestFlowSubmitOnlyFromReady(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{seats: testSeats()}
	f := NewFlow(collab)

	if _, err := f.Submit(ctx); !domain.IsValidation(err) {
		t.Fatalf("submit while browsing: got %v", err)
	}

	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Submit(ctx); !domain.IsValidation(err) {
		t.Fatalf("submit with no seats: got %v", err)
	}

	f.ToggleSeat(1)
	if _, err := f.Submit(ctx); !domain.IsValidation(err) {
		t.Fatalf("submit with blank passenger: got %v", err)
	}
	if collab.submits != 0 {
		t.Fatalf("collaborator reached %d times before ready", collab.submits)
	}
}

func TestFlowSubmitBadAgeRejectedLocally(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{seats: testSeats()}
	f := NewFlow(collab)
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	f.ToggleSeat(1)
	fillPassenger(t, f, 0, "11111111", "Ana", "Flores", "veinte")

	if _, err := f.Submit(ctx); !domain.IsValidation(err) {
		t.Fatalf("unparsable age: got %v", err)
	}
	if collab.submits != 0 {
		t.Fatal("validation error must not reach the collaborator")
	}
}

func TestFlowSubmitFailureKeepsEnteredData(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{
		seats:     testSeats(),
		submitErr: errors.New("asiento tomado por otro comprador"),
	}
	f := NewFlow(collab)
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	f.ToggleSeat(1)
	fillPassenger(t, f, 0, "11111111", "Ana", "Flores", "28")

	if _, err := f.Submit(ctx); err == nil {
		t.Fatal("expected submit error")
	}
	if f.State() != StateReadyToSubmit {
		t.Fatalf("after failed submit: state = %s", f.State())
	}
	if len(f.SeatIDs()) != 1 || f.Passengers()[0].FirstNames != "Ana" {
		t.Fatal("entered data lost after failed submit")
	}

	// Retry succeeds without re-entering anything.
	collab.submitErr = nil
	collab.receipt = models.PurchaseReceipt{ReferenceID: 9}
	if _, err := f.Submit(ctx); err != nil {
		t.Fatal(err)
	}
	if f.State() != StateConfirmed {
		t.Fatalf("after retry: state = %s", f.State())
	}
}

func TestFlowConfirmedSessionIsFrozen(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{seats: testSeats(), receipt: models.PurchaseReceipt{ReferenceID: 9}}
	f := NewFlow(collab)
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	f.ToggleSeat(1)
	fillPassenger(t, f, 0, "11111111", "Ana", "Flores", "28")
	if _, err := f.Submit(ctx); err != nil {
		t.Fatal(err)
	}

	if err := f.ToggleSeat(3); !domain.IsConflict(err) {
		t.Fatalf("toggle after confirm: got %v", err)
	}
	if err := f.SetPassengerField(0, "nombres", "Eva"); !domain.IsConflict(err) {
		t.Fatalf("edit after confirm: got %v", err)
	}
	if _, err := f.Submit(ctx); !domain.IsValidation(err) {
		t.Fatalf("double submit: got %v", err)
	}
	if collab.submits != 1 {
		t.Fatalf("collaborator reached %d times, want 1", collab.submits)
	}
}

func TestFlowNoLeakageBetweenTrips(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{seats: testSeats(), receipt: models.PurchaseReceipt{ReferenceID: 9}}
	f := NewFlow(collab)
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	f.ToggleSeat(1)
	fillPassenger(t, f, 0, "11111111", "Ana", "Flores", "28")
	if _, err := f.Submit(ctx); err != nil {
		t.Fatal(err)
	}

	other := testTrip()
	other.ID = 10
	if err := f.SelectTrip(ctx, other); err != nil {
		t.Fatal(err)
	}
	if f.State() != StateSeatsReady {
		t.Fatalf("new trip: state = %s", f.State())
	}
	if len(f.SeatIDs()) != 0 || len(f.Passengers()) != 0 {
		t.Fatal("selection leaked into the new trip")
	}
	if f.Confirmation() != nil {
		t.Fatal("old confirmation leaked into the new trip")
	}
}

func TestFlowAcknowledgeReturnsToBrowsing(t *testing.T) {
	ctx := context.Background()
	collab := &fakeCollaborator{seats: testSeats(), receipt: models.PurchaseReceipt{ReferenceID: 9}}
	f := NewFlow(collab)
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}
	f.ToggleSeat(1)
	fillPassenger(t, f, 0, "11111111", "Ana", "Flores", "28")
	if _, err := f.Submit(ctx); err != nil {
		t.Fatal(err)
	}

	f.Acknowledge()
	if f.State() != StateBrowsing {
		t.Fatalf("after acknowledge: state = %s", f.State())
	}
	if f.Trip() != nil || f.Confirmation() != nil || len(f.SeatIDs()) != 0 {
		t.Fatal("acknowledge did not clear the session")
	}
}

func TestFlowScenario(t *testing.T) {
	// Two seats in row A, seat 2 occupied: two cells, no aisle, only seat 1
	// sellable.
	ctx := context.Background()
	seats := []models.Seat{
		{ID: 1, BusID: 4, Floor: 1, Row: "A", Column: "1", Label: "A1", Status: models.SeatAvailable},
		{ID: 2, BusID: 4, Floor: 1, Row: "A", Column: "2", Label: "A2", Status: models.SeatOccupied},
	}
	collab := &fakeCollaborator{seats: seats, receipt: models.PurchaseReceipt{ReferenceID: 9}}
	f := NewFlow(collab)
	if err := f.SelectTrip(ctx, testTrip()); err != nil {
		t.Fatal(err)
	}

	layouts := f.Layouts()
	if len(layouts) != 1 {
		t.Fatalf("floors = %d", len(layouts))
	}
	if layouts[0].AisleIndex != -1 || len(layouts[0].Grid[0]) != 2 {
		t.Fatalf("unexpected grid: %+v", layouts[0])
	}

	f.ToggleSeat(2)
	if len(f.SeatIDs()) != 0 {
		t.Fatal("occupied seat must not be selectable")
	}
	f.ToggleSeat(1)
	fillPassenger(t, f, 0, "11111111", "Ana", "Flores", "28")

	conf, err := f.Submit(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if conf.TotalPaid != 45.50 {
		t.Fatalf("total = %v, want 45.50", conf.TotalPaid)
	}
}
