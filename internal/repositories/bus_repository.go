package repositories

import (
	"database/sql"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// BusRepository wraps DB access for buses. Reads join the assigned driver so
// the back-office table can show it directly.
type BusRepository struct {
	DB *sql.DB
}

const busSelect = `
	SELECT b.id, b.placa, b.conductor_id,
	       c.id, c.nombre, c.apellido, c.dni, c.numero_licencia
	FROM buses b
	LEFT JOIN conductores c ON c.id = b.conductor_id`

func scanBus(row interface{ Scan(...any) error }) (models.Bus, error) {
	var b models.Bus
	var (
		dID      sql.NullInt64
		dFirst   sql.NullString
		dLast    sql.NullString
		dDNI     sql.NullString
		dLicense sql.NullString
	)
	err := row.Scan(&b.ID, &b.Plate, &b.DriverID, &dID, &dFirst, &dLast, &dDNI, &dLicense)
	if err != nil {
		return b, err
	}
	if dID.Valid {
		b.Driver = &models.Driver{
			ID:            dID.Int64,
			FirstName:     dFirst.String,
			LastName:      dLast.String,
			DocumentID:    dDNI.String,
			LicenseNumber: dLicense.String,
		}
	}
	return b, nil
}

func (r BusRepository) List() ([]models.Bus, error) {
	rows, err := r.DB.Query(busSelect + ` ORDER BY b.placa`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Bus{}
	for rows.Next() {
		b, err := scanBus(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r BusRepository) GetByID(id int64) (models.Bus, error) {
	b, err := scanBus(r.DB.QueryRow(busSelect+` WHERE b.id=?`, id))
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "bus"}
	}
	return b, err
}

func (r BusRepository) GetByPlate(plate string) (models.Bus, error) {
	b, err := scanBus(r.DB.QueryRow(busSelect+` WHERE b.placa=?`, plate))
	if err == sql.ErrNoRows {
		return b, domain.NotFoundError{Resource: "bus"}
	}
	return b, err
}

func (r BusRepository) Create(b models.Bus) (models.Bus, error) {
	res, err := r.DB.Exec(`INSERT INTO buses (placa, conductor_id) VALUES (?,?)`,
		b.Plate, b.DriverID)
	if err != nil {
		return b, err
	}
	b.ID, _ = res.LastInsertId()
	return r.GetByID(b.ID)
}

func (r BusRepository) Update(b models.Bus) error {
	res, err := r.DB.Exec(`UPDATE buses SET placa=?, conductor_id=? WHERE id=?`,
		b.Plate, b.DriverID, b.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(b.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r BusRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM buses WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "bus"}
	}
	return nil
}
