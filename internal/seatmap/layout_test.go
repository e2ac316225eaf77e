package seatmap

import (
	"math/rand"
	"reflect"
	"testing"

	"perubus/internal/domain/models"
)

func seat(id int64, floor int, row, col string, status models.SeatStatus) models.Seat {
	return models.Seat{
		ID:     id,
		BusID:  1,
		Floor:  floor,
		Row:    row,
		Column: col,
		Label:  row + col,
		Status: status,
	}
}

func doubleDeckerSeats() []models.Seat {
	return []models.Seat{
		seat(1, 1, "A", "1", models.SeatAvailable),
		seat(2, 1, "A", "2", models.SeatOccupied),
		seat(3, 1, "A", "3", models.SeatAvailable),
		seat(4, 1, "A", "4", models.SeatAvailable),
		seat(5, 1, "B", "1", models.SeatReserved),
		seat(6, 1, "B", "2", models.SeatAvailable),
		seat(7, 1, "B", "4", models.SeatAvailable),
		seat(8, 2, "A", "1", models.SeatAvailable),
		seat(9, 2, "A", "2", models.SeatAvailable),
	}
}

func TestComputeFloorLayoutsDeterministicUnderPermutation(t *testing.T) {
	base := doubleDeckerSeats()
	want := ComputeFloorLayouts(base)

	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		shuffled := make([]models.Seat, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got := ComputeFloorLayouts(shuffled)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("trial %d: layout changed under permutation:\ngot  %+v\nwant %+v", trial, got, want)
		}
	}
}

func TestComputeFloorLayoutsFloorsAscending(t *testing.T) {
	layouts := ComputeFloorLayouts(doubleDeckerSeats())
	if len(layouts) != 2 {
		t.Fatalf("expected 2 floors, got %d", len(layouts))
	}
	if layouts[0].Floor != 1 || layouts[1].Floor != 2 {
		t.Fatalf("floors out of order: %d, %d", layouts[0].Floor, layouts[1].Floor)
	}
}

func TestAislePlacementFourColumns(t *testing.T) {
	layouts := ComputeFloorLayouts([]models.Seat{
		seat(1, 1, "A", "1", models.SeatAvailable),
		seat(2, 1, "A", "2", models.SeatAvailable),
		seat(3, 1, "A", "3", models.SeatAvailable),
		seat(4, 1, "A", "4", models.SeatAvailable),
	})
	if len(layouts) != 1 {
		t.Fatalf("expected 1 floor, got %d", len(layouts))
	}
	fl := layouts[0]
	if fl.AisleIndex != 2 {
		t.Fatalf("aisle index = %d, want 2", fl.AisleIndex)
	}
	row := fl.Grid[0]
	if len(row) != 5 {
		t.Fatalf("row length = %d, want 5", len(row))
	}
	aisles := 0
	for pos, cell := range row {
		if cell.Kind == CellAisle {
			aisles++
			if pos != 2 {
				t.Fatalf("aisle at position %d, want 2", pos)
			}
		}
	}
	if aisles != 1 {
		t.Fatalf("aisle count = %d, want 1", aisles)
	}
	if row[0].Kind != CellSeat || row[1].Kind != CellSeat ||
		row[3].Kind != CellSeat || row[4].Kind != CellSeat {
		t.Fatalf("expected two-seat blocks around the aisle, got %+v", row)
	}
}

func TestAislePlacementThreeColumns(t *testing.T) {
	layouts := ComputeFloorLayouts([]models.Seat{
		seat(1, 1, "A", "1", models.SeatAvailable),
		seat(2, 1, "A", "2", models.SeatAvailable),
		seat(3, 1, "A", "3", models.SeatAvailable),
	})
	fl := layouts[0]
	if fl.AisleIndex != 2 {
		t.Fatalf("aisle index = %d, want 2", fl.AisleIndex)
	}
	row := fl.Grid[0]
	if len(row) != 4 {
		t.Fatalf("row length = %d, want 4", len(row))
	}
	if row[2].Kind != CellAisle || row[3].Kind != CellSeat {
		t.Fatalf("expected aisle then one-seat block, got %+v", row)
	}
}

func TestAislePlacementTwoColumns(t *testing.T) {
	layouts := ComputeFloorLayouts([]models.Seat{
		seat(1, 1, "A", "1", models.SeatAvailable),
		seat(2, 1, "A", "2", models.SeatOccupied),
	})
	fl := layouts[0]
	if fl.AisleIndex != -1 {
		t.Fatalf("aisle index = %d, want -1", fl.AisleIndex)
	}
	row := fl.Grid[0]
	if len(row) != 2 {
		t.Fatalf("row length = %d, want 2", len(row))
	}
	for _, cell := range row {
		if cell.Kind == CellAisle {
			t.Fatal("unexpected aisle cell in a two-column floor")
		}
	}
}

func TestMissingSeatBecomesEmptyCell(t *testing.T) {
	// Row B has no seat in column 3.
	layouts := ComputeFloorLayouts([]models.Seat{
		seat(1, 1, "A", "1", models.SeatAvailable),
		seat(2, 1, "A", "3", models.SeatAvailable),
		seat(3, 1, "B", "1", models.SeatAvailable),
	})
	fl := layouts[0]
	if len(fl.Rows) != 2 || len(fl.Columns) != 2 {
		t.Fatalf("unexpected shape: rows %v cols %v", fl.Rows, fl.Columns)
	}
	rowB := fl.Grid[1]
	if rowB[1].Kind != CellEmpty {
		t.Fatalf("expected empty cell for B-3, got %v", rowB[1].Kind)
	}
}

func TestDuplicatePlacementLastIDWins(t *testing.T) {
	dup := []models.Seat{
		seat(10, 1, "A", "1", models.SeatAvailable),
		seat(7, 1, "A", "1", models.SeatOccupied),
	}
	layouts := ComputeFloorLayouts(dup)
	cell := layouts[0].Grid[0][0]
	if cell.Kind != CellSeat || cell.Seat.ID != 10 {
		t.Fatalf("expected highest-id seat to win the placement, got %+v", cell)
	}

	// Same collision in the opposite input order resolves identically.
	layouts2 := ComputeFloorLayouts([]models.Seat{dup[1], dup[0]})
	if !reflect.DeepEqual(layouts, layouts2) {
		t.Fatal("collision resolution depends on input order")
	}
}

func TestUnparsableColumnSkipped(t *testing.T) {
	layouts := ComputeFloorLayouts([]models.Seat{
		seat(1, 1, "A", "1", models.SeatAvailable),
		seat(2, 1, "A", "x", models.SeatAvailable),
	})
	fl := layouts[0]
	if len(fl.Columns) != 1 || fl.Columns[0] != 1 {
		t.Fatalf("expected only column 1, got %v", fl.Columns)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := ComputeFloorLayouts(nil); len(got) != 0 {
		t.Fatalf("expected no layouts for empty input, got %d", len(got))
	}
}
