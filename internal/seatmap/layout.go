// Package seatmap turns the raw seat records of one bus into renderable,
// aisle-aware floor grids. It is pure computation: no I/O, no state.
package seatmap

import (
	"fmt"
	"sort"

	"perubus/internal/domain/models"
)

type CellKind string

const (
	CellSeat  CellKind = "asiento"
	CellEmpty CellKind = "vacio"
	CellAisle CellKind = "pasillo"
)

// Cell is one logical grid position: a seat, an empty placeholder where no
// seat record exists, or the aisle spacer.
type Cell struct {
	Kind CellKind     `json:"tipo"`
	Seat *models.Seat `json:"asiento,omitempty"`
}

// FloorLayout is the derived grid for one deck. Recomputed on every render,
// never persisted.
type FloorLayout struct {
	Floor      int      `json:"piso"`
	Rows       []string `json:"filas"`
	Columns    []int    `json:"columnas"`
	AisleIndex int      `json:"posicionPasillo"`
	Grid       [][]Cell `json:"celdas"`
}

// ComputeFloorLayouts groups seats by floor and lays each floor out as a
// dense row-major grid. Floors come out ascending, rows lexicographic,
// columns numeric. An empty input yields an empty slice; the caller renders
// the "no seats" state.
func ComputeFloorLayouts(seats []models.Seat) []FloorLayout {
	byFloor := map[int][]models.Seat{}
	for _, s := range seats {
		if _, ok := s.ColumnNumber(); !ok {
			continue
		}
		byFloor[s.Floor] = append(byFloor[s.Floor], s)
	}

	floors := make([]int, 0, len(byFloor))
	for f := range byFloor {
		floors = append(floors, f)
	}
	sort.Ints(floors)

	layouts := make([]FloorLayout, 0, len(floors))
	for _, f := range floors {
		layouts = append(layouts, layoutFloor(f, byFloor[f]))
	}
	return layouts
}

func layoutFloor(floor int, seats []models.Seat) FloorLayout {
	// Sorting by id first makes the last-write-wins collision policy
	// independent of input order, keeping the whole layout deterministic.
	sort.Slice(seats, func(i, j int) bool { return seats[i].ID < seats[j].ID })

	rowSet := map[string]bool{}
	colSet := map[int]bool{}
	lookup := map[string]models.Seat{}

	for _, s := range seats {
		col, _ := s.ColumnNumber()
		rowSet[s.Row] = true
		colSet[col] = true
		lookup[placementKey(s.Row, col)] = s
	}

	rows := make([]string, 0, len(rowSet))
	for r := range rowSet {
		rows = append(rows, r)
	}
	sort.Strings(rows)

	cols := make([]int, 0, len(colSet))
	for c := range colSet {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	aisle := aisleIndexFor(cols[len(cols)-1])
	total := len(cols)
	if aisle != -1 {
		total++
	}

	grid := make([][]Cell, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, 0, total)
		seatPos := 0
		for pos := 0; pos < total; pos++ {
			if pos == aisle {
				cells = append(cells, Cell{Kind: CellAisle})
				continue
			}
			col := cols[seatPos]
			seatPos++
			if s, ok := lookup[placementKey(row, col)]; ok {
				seat := s
				cells = append(cells, Cell{Kind: CellSeat, Seat: &seat})
			} else {
				cells = append(cells, Cell{Kind: CellEmpty})
			}
		}
		grid = append(grid, cells)
	}

	return FloorLayout{
		Floor:      floor,
		Rows:       rows,
		Columns:    cols,
		AisleIndex: aisle,
		Grid:       grid,
	}
}

// aisleIndexFor applies the standard coach layouts: 2+2 with a center aisle
// for wide buses, 2+1 for three-across, and a single block for minibuses.
func aisleIndexFor(maxCol int) int {
	if maxCol >= 3 {
		return 2
	}
	return -1
}

func placementKey(row string, col int) string {
	return fmt.Sprintf("%s-%d", row, col)
}
