package booking

import (
	"math/rand"
	"reflect"
	"testing"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

func mkSeat(id int64, label string, status models.SeatStatus) models.Seat {
	return models.Seat{ID: id, BusID: 1, Floor: 1, Row: "A", Column: "1", Label: label, Status: status}
}

func TestToggleSelectsAndDeselects(t *testing.T) {
	var m Manifest
	s := mkSeat(1, "A1", models.SeatAvailable)

	if changed := m.Toggle(s); !changed {
		t.Fatal("selecting an available seat should change the manifest")
	}
	if m.Len() != 1 || !m.Selected(1) {
		t.Fatalf("seat not selected: len=%d", m.Len())
	}
	if changed := m.Toggle(s); !changed {
		t.Fatal("deselecting a selected seat should change the manifest")
	}
	if m.Len() != 0 || m.Selected(1) {
		t.Fatal("seat still selected after re-toggle")
	}
}

func TestToggleOccupiedIsNoOp(t *testing.T) {
	var m Manifest
	for _, status := range []models.SeatStatus{models.SeatOccupied, models.SeatReserved} {
		if changed := m.Toggle(mkSeat(2, "A2", status)); changed {
			t.Fatalf("toggling a %s seat should be a no-op", status)
		}
	}
	if m.Len() != 0 {
		t.Fatalf("manifest grew: len=%d", m.Len())
	}
}

func TestReToggleRestoresExactState(t *testing.T) {
	var m Manifest
	m.Toggle(mkSeat(1, "A1", models.SeatAvailable))
	m.Toggle(mkSeat(2, "A2", models.SeatAvailable))
	if err := m.SetPassengerField(0, "nombres", "Rosa"); err != nil {
		t.Fatal(err)
	}
	if err := m.SetPassengerField(1, "dni", "44556677"); err != nil {
		t.Fatal(err)
	}

	beforeIDs := m.SeatIDs()
	beforePassengers := m.Passengers()

	x := mkSeat(3, "B1", models.SeatAvailable)
	m.Toggle(x)
	m.Toggle(x)

	if !reflect.DeepEqual(m.SeatIDs(), beforeIDs) {
		t.Fatalf("seat ids changed: %v vs %v", m.SeatIDs(), beforeIDs)
	}
	if !reflect.DeepEqual(m.Passengers(), beforePassengers) {
		t.Fatalf("passengers changed: %+v vs %+v", m.Passengers(), beforePassengers)
	}
}

// Randomized toggle sequences: the seat list and its passengers must stay in
// lockstep after every operation, and surviving passengers must still be
// bound to the same seat they were entered for.
func TestToggleSequencesKeepSeatsAndPassengersAligned(t *testing.T) {
	pool := []models.Seat{
		mkSeat(1, "A1", models.SeatAvailable),
		mkSeat(2, "A2", models.SeatAvailable),
		mkSeat(3, "A3", models.SeatOccupied),
		mkSeat(4, "B1", models.SeatAvailable),
		mkSeat(5, "B2", models.SeatReserved),
		mkSeat(6, "B3", models.SeatAvailable),
	}
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		var m Manifest
		bySeat := map[int64]models.Passenger{}

		for op := 0; op < 40; op++ {
			s := pool[rng.Intn(len(pool))]
			wasSelected := m.Selected(s.ID)
			m.Toggle(s)

			if wasSelected {
				delete(bySeat, s.ID)
			} else if s.Available() {
				// Freshly selected seats start with a blank record,
				// then get a distinguishable name.
				idx := -1
				for i, id := range m.SeatIDs() {
					if id == s.ID {
						idx = i
					}
				}
				if idx == -1 {
					t.Fatalf("trial %d op %d: seat %d not found after select", trial, op, s.ID)
				}
				if got := m.Passengers()[idx]; got != (models.Passenger{}) {
					t.Fatalf("trial %d op %d: new passenger not blank: %+v", trial, op, got)
				}
				name := s.Label + "-holder"
				if err := m.SetPassengerField(idx, "nombres", name); err != nil {
					t.Fatal(err)
				}
				bySeat[s.ID] = models.Passenger{FirstNames: name}
			}

			ids := m.SeatIDs()
			passengers := m.Passengers()
			if len(ids) != len(passengers) {
				t.Fatalf("trial %d op %d: %d seats vs %d passengers", trial, op, len(ids), len(passengers))
			}
			if len(ids) != len(bySeat) {
				t.Fatalf("trial %d op %d: manifest has %d seats, model has %d", trial, op, len(ids), len(bySeat))
			}
			for i, id := range ids {
				if passengers[i] != bySeat[id] {
					t.Fatalf("trial %d op %d: passenger for seat %d drifted: %+v vs %+v",
						trial, op, id, passengers[i], bySeat[id])
				}
			}
		}
	}
}

func TestSetPassengerFieldValidation(t *testing.T) {
	var m Manifest
	m.Toggle(mkSeat(1, "A1", models.SeatAvailable))

	if err := m.SetPassengerField(5, "dni", "123"); !domain.IsValidation(err) {
		t.Fatalf("out-of-range index: got %v", err)
	}
	if err := m.SetPassengerField(-1, "dni", "123"); !domain.IsValidation(err) {
		t.Fatalf("negative index: got %v", err)
	}
	if err := m.SetPassengerField(0, "telefono", "x"); !domain.IsValidation(err) {
		t.Fatalf("unknown field: got %v", err)
	}

	for field, want := range map[string]string{
		"dni": "12345678", "nombres": "Luis", "apellidos": "Quispe", "edad": "31",
	} {
		if err := m.SetPassengerField(0, field, want); err != nil {
			t.Fatalf("set %s: %v", field, err)
		}
	}
	p := m.Passengers()[0]
	if p.DocumentID != "12345678" || p.FirstNames != "Luis" || p.LastNames != "Quispe" || p.Age != "31" {
		t.Fatalf("fields not applied: %+v", p)
	}
	if !m.Complete() {
		t.Fatal("passenger with all four fields should be complete")
	}
}
