package models

import (
	"strconv"
	"strings"
)

// SeatStatus values are the wire values the storefront understands.
type SeatStatus string

const (
	SeatAvailable SeatStatus = "DISPONIBLE"
	SeatOccupied  SeatStatus = "OCUPADO"
	SeatReserved  SeatStatus = "RESERVADO"
)

// Seat is one physical seat of a bus. Identity is ID; (piso, fila, columna)
// is only a placement key for the layout grid.
type Seat struct {
	ID     int64      `json:"idAsiento"`
	BusID  int64      `json:"idBus"`
	Floor  int        `json:"piso"`
	Row    string     `json:"fila"`
	Column string     `json:"columna"`
	Label  string     `json:"descripcion"`
	Status SeatStatus `json:"estado"`
}

func (s Seat) Available() bool {
	return s.Status == SeatAvailable
}

// ColumnNumber parses the free-text column into its numeric position.
func (s Seat) ColumnNumber() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s.Column))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// NormalizeSeatStatus maps legacy lowercase statuses onto the canonical set.
func NormalizeSeatStatus(raw string) (SeatStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(SeatAvailable):
		return SeatAvailable, true
	case string(SeatOccupied):
		return SeatOccupied, true
	case string(SeatReserved):
		return SeatReserved, true
	}
	return "", false
}
