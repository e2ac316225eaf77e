package repositories

import (
	"database/sql"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// TripRepository wraps DB access for viajes. Reads join route and bus since
// the storefront always renders both.
type TripRepository struct {
	DB *sql.DB
}

const tripSelect = `
	SELECT v.id, v.hora_salida, DATE_FORMAT(v.fecha_salida, '%Y-%m-%d'), v.costo,
	       v.ruta_id, v.bus_id, r.nombre, b.placa
	FROM viajes v
	JOIN rutas r ON r.id = v.ruta_id
	JOIN buses b ON b.id = v.bus_id`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	var routeName, plate string
	err := row.Scan(&t.ID, &t.DepartureTime, &t.DepartureDate, &t.Cost,
		&t.RouteID, &t.BusID, &routeName, &plate)
	if err != nil {
		return t, err
	}
	t.Route = &models.Route{ID: t.RouteID, Name: routeName}
	t.Bus = &models.Bus{ID: t.BusID, Plate: plate}
	return t, nil
}

func (r TripRepository) List() ([]models.Trip, error) {
	rows, err := r.DB.Query(tripSelect + ` ORDER BY v.fecha_salida DESC, v.hora_salida`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrips(rows)
}

func (r TripRepository) GetByID(id int64) (models.Trip, error) {
	t, err := scanTrip(r.DB.QueryRow(tripSelect+` WHERE v.id=?`, id))
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "viaje"}
	}
	return t, err
}

// Search finds trips for a route on a given date (the storefront search).
func (r TripRepository) Search(date string, routeID int64) ([]models.Trip, error) {
	rows, err := r.DB.Query(
		tripSelect+` WHERE v.fecha_salida=? AND v.ruta_id=? ORDER BY v.hora_salida`,
		date, routeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrips(rows)
}

func (r TripRepository) Create(t models.Trip) (models.Trip, error) {
	res, err := r.DB.Exec(`
		INSERT INTO viajes (hora_salida, fecha_salida, costo, ruta_id, bus_id)
		VALUES (?,?,?,?,?)`,
		t.DepartureTime, t.DepartureDate, t.Cost, t.RouteID, t.BusID)
	if err != nil {
		return t, err
	}
	t.ID, _ = res.LastInsertId()
	return r.GetByID(t.ID)
}

func (r TripRepository) Update(t models.Trip) error {
	res, err := r.DB.Exec(`
		UPDATE viajes SET hora_salida=?, fecha_salida=?, costo=?, ruta_id=?, bus_id=?
		WHERE id=?`,
		t.DepartureTime, t.DepartureDate, t.Cost, t.RouteID, t.BusID, t.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(t.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r TripRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM viajes WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "viaje"}
	}
	return nil
}

// SeatCounts returns (available, total) for the trip's bus.
func (r TripRepository) SeatCounts(busID int64) (int, int, error) {
	var available, total int
	err := r.DB.QueryRow(`
		SELECT COALESCE(SUM(estado=?),0), COUNT(*)
		FROM asientos WHERE bus_id=?`,
		string(models.SeatAvailable), busID).
		Scan(&available, &total)
	return available, total, err
}

func collectTrips(rows *sql.Rows) ([]models.Trip, error) {
	list := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
