// Package booking holds the purchase-side core: the seat/passenger manifest
// and the flow state machine that drives a booking session from trip pick to
// confirmed ticket.
package booking

import (
	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

type manifestEntry struct {
	SeatID    int64
	Label     string
	Passenger models.Passenger
}

// Manifest is the ordered seat -> passenger mapping of one booking session.
// A single entry sequence keeps seats and passengers in lockstep: removing
// a seat always takes its passenger with it.
type Manifest struct {
	entries []manifestEntry
}

// Toggle selects an available seat or deselects an already-selected one.
// Toggling an occupied or reserved seat is a no-op, not an error. Returns
// whether the manifest changed.
func (m *Manifest) Toggle(seat models.Seat) bool {
	for i, e := range m.entries {
		if e.SeatID == seat.ID {
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return true
		}
	}
	if !seat.Available() {
		return false
	}
	m.entries = append(m.entries, manifestEntry{
		SeatID:    seat.ID,
		Label:     seat.Label,
		Passenger: models.Passenger{},
	})
	return true
}

// SetPassengerField updates one field of the passenger bound to the seat at
// the given selection index. Field names are the wire names the storefront
// sends.
func (m *Manifest) SetPassengerField(index int, field, value string) error {
	if index < 0 || index >= len(m.entries) {
		return domain.ValidationError{Field: "indice", Msg: "no hay asiento seleccionado en esa posicion"}
	}
	p := &m.entries[index].Passenger
	switch field {
	case "dni":
		p.DocumentID = value
	case "nombres":
		p.FirstNames = value
	case "apellidos":
		p.LastNames = value
	case "edad":
		p.Age = value
	default:
		return domain.ValidationError{Field: "campo", Msg: "campo de pasajero desconocido"}
	}
	return nil
}

func (m *Manifest) Len() int {
	return len(m.entries)
}

func (m *Manifest) Selected(seatID int64) bool {
	for _, e := range m.entries {
		if e.SeatID == seatID {
			return true
		}
	}
	return false
}

// SeatIDs returns the selection in insertion order.
func (m *Manifest) SeatIDs() []int64 {
	out := make([]int64, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.SeatID
	}
	return out
}

// SeatLabels returns the human-readable seat codes in selection order.
func (m *Manifest) SeatLabels() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Label
	}
	return out
}

// Passengers returns the passenger records in selection order.
func (m *Manifest) Passengers() []models.Passenger {
	out := make([]models.Passenger, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Passenger
	}
	return out
}

// Complete reports whether every passenger has all four required fields.
func (m *Manifest) Complete() bool {
	for _, e := range m.entries {
		if !e.Passenger.Complete() {
			return false
		}
	}
	return true
}

func (m *Manifest) Clear() {
	m.entries = nil
}
