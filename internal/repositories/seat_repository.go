package repositories

import (
	"database/sql"
	"strings"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// SeatRepository wraps DB access for asientos.
type SeatRepository struct {
	DB *sql.DB
}

const seatSelect = `
	SELECT id, bus_id, piso, fila, columna, COALESCE(descripcion,''), estado
	FROM asientos`

func (r SeatRepository) ListByBus(busID int64) ([]models.Seat, error) {
	rows, err := r.DB.Query(seatSelect+` WHERE bus_id=? ORDER BY id`, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeats(rows)
}

func (r SeatRepository) List() ([]models.Seat, error) {
	rows, err := r.DB.Query(seatSelect + ` ORDER BY bus_id, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeats(rows)
}

func (r SeatRepository) GetByID(id int64) (models.Seat, error) {
	var s models.Seat
	err := r.DB.QueryRow(seatSelect+` WHERE id=?`, id).
		Scan(&s.ID, &s.BusID, &s.Floor, &s.Row, &s.Column, &s.Label, &s.Status)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "asiento"}
	}
	return s, err
}

func (r SeatRepository) Create(s models.Seat) (models.Seat, error) {
	res, err := r.DB.Exec(`
		INSERT INTO asientos (bus_id, piso, fila, columna, descripcion, estado)
		VALUES (?,?,?,?,?,?)`,
		s.BusID, s.Floor, s.Row, s.Column, s.Label, s.Status)
	if err != nil {
		return s, err
	}
	s.ID, _ = res.LastInsertId()
	return s, nil
}

// CreateBatch provisions a whole bus worth of seats in one transaction.
// Either every seat lands or none does; a half-provisioned bus is worse
// than a failed request.
func (r SeatRepository) CreateBatch(busID int64, seats []models.Seat) ([]models.Seat, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	out := make([]models.Seat, 0, len(seats))
	for _, s := range seats {
		s.BusID = busID
		res, err := tx.Exec(`
			INSERT INTO asientos (bus_id, piso, fila, columna, descripcion, estado)
			VALUES (?,?,?,?,?,?)`,
			s.BusID, s.Floor, s.Row, s.Column, s.Label, s.Status)
		if err != nil {
			return nil, err
		}
		s.ID, _ = res.LastInsertId()
		out = append(out, s)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r SeatRepository) Update(s models.Seat) error {
	res, err := r.DB.Exec(`
		UPDATE asientos SET bus_id=?, piso=?, fila=?, columna=?, descripcion=?, estado=?
		WHERE id=?`,
		s.BusID, s.Floor, s.Row, s.Column, s.Label, s.Status, s.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(s.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r SeatRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM asientos WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "asiento"}
	}
	return nil
}

// LockSeats loads the given seats inside an open transaction, taking row
// locks so the availability re-check at purchase time is authoritative.
func LockSeats(tx *sql.Tx, ids []int64) ([]models.Seat, error) {
	if len(ids) == 0 {
		return []models.Seat{}, nil
	}
	query := seatSelect + ` WHERE id IN (` + placeholders(len(ids)) + `) ORDER BY id FOR UPDATE`
	rows, err := tx.Query(query, int64Args(ids)...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSeats(rows)
}

// MarkOccupied flips the given seats to OCUPADO inside the transaction.
func MarkOccupied(tx *sql.Tx, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE asientos SET estado=? WHERE id IN (` + placeholders(len(ids)) + `)`
	args := append([]any{string(models.SeatOccupied)}, int64Args(ids)...)
	_, err := tx.Exec(query, args...)
	return err
}

func collectSeats(rows *sql.Rows) ([]models.Seat, error) {
	list := []models.Seat{}
	for rows.Next() {
		var s models.Seat
		if err := rows.Scan(&s.ID, &s.BusID, &s.Floor, &s.Row, &s.Column, &s.Label, &s.Status); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
