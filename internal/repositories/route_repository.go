package repositories

import (
	"database/sql"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// RouteRepository wraps DB access for rutas and their ordered agency stops.
type RouteRepository struct {
	DB *sql.DB
}

func (r RouteRepository) List() ([]models.Route, error) {
	rows, err := r.DB.Query(`SELECT id, nombre FROM rutas ORDER BY nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Route{}
	for rows.Next() {
		var rt models.Route
		if err := rows.Scan(&rt.ID, &rt.Name); err != nil {
			return nil, err
		}
		list = append(list, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		if err := r.attachAgencies(&list[i]); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r RouteRepository) GetByID(id int64) (models.Route, error) {
	var rt models.Route
	err := r.DB.QueryRow(`SELECT id, nombre FROM rutas WHERE id=?`, id).
		Scan(&rt.ID, &rt.Name)
	if err == sql.ErrNoRows {
		return rt, domain.NotFoundError{Resource: "ruta"}
	}
	if err != nil {
		return rt, err
	}
	if err := r.attachAgencies(&rt); err != nil {
		return rt, err
	}
	return rt, nil
}

// Create stores the route with its agency stops in one transaction, so a
// route never exists without its itinerary.
func (r RouteRepository) Create(rt models.Route) (models.Route, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return rt, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO rutas (nombre) VALUES (?)`, rt.Name)
	if err != nil {
		return rt, err
	}
	rt.ID, _ = res.LastInsertId()

	if err := insertStops(tx, rt); err != nil {
		return rt, err
	}
	if err := tx.Commit(); err != nil {
		return rt, err
	}
	return r.GetByID(rt.ID)
}

func (r RouteRepository) Update(rt models.Route) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE rutas SET nombre=? WHERE id=?`, rt.Name, rt.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int64
		if err := tx.QueryRow(`SELECT id FROM rutas WHERE id=?`, rt.ID).Scan(&exists); err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "ruta"}
		}
	}

	if _, err := tx.Exec(`DELETE FROM ruta_agencias WHERE ruta_id=?`, rt.ID); err != nil {
		return err
	}
	if err := insertStops(tx, rt); err != nil {
		return err
	}
	return tx.Commit()
}

func (r RouteRepository) Delete(id int64) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM ruta_agencias WHERE ruta_id=?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM rutas WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "ruta"}
	}
	return tx.Commit()
}

func insertStops(tx *sql.Tx, rt models.Route) error {
	for i, agencyID := range rt.AgencyIDs {
		order := i + 1
		if i < len(rt.StopOrders) {
			order = rt.StopOrders[i]
		}
		if _, err := tx.Exec(`
			INSERT INTO ruta_agencias (ruta_id, agencia_id, orden) VALUES (?,?,?)`,
			rt.ID, agencyID, order); err != nil {
			return err
		}
	}
	return nil
}

func (r RouteRepository) attachAgencies(rt *models.Route) error {
	rows, err := r.DB.Query(`
		SELECT a.id, a.departamento, a.provincia, a.direccion, COALESCE(a.referencia,''), ra.orden
		FROM ruta_agencias ra
		JOIN agencias a ON a.id = ra.agencia_id
		WHERE ra.ruta_id = ?
		ORDER BY ra.orden`, rt.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	rt.Agencies = []models.Agency{}
	rt.AgencyIDs = []int64{}
	rt.StopOrders = []int{}
	for rows.Next() {
		var a models.Agency
		if err := rows.Scan(&a.ID, &a.Region, &a.Province, &a.Address, &a.Landmark, &a.StopOrder); err != nil {
			return err
		}
		rt.Agencies = append(rt.Agencies, a)
		rt.AgencyIDs = append(rt.AgencyIDs, a.ID)
		rt.StopOrders = append(rt.StopOrders, a.StopOrder)
	}
	return rows.Err()
}
