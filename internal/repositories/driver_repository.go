package repositories

import (
	"database/sql"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// DriverRepository wraps DB access for conductores.
type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) List() ([]models.Driver, error) {
	rows, err := r.DB.Query(`
		SELECT id, nombre, apellido, dni, numero_licencia
		FROM conductores ORDER BY apellido, nombre`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Driver{}
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.DocumentID, &d.LicenseNumber); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r DriverRepository) GetByID(id int64) (models.Driver, error) {
	var d models.Driver
	err := r.DB.QueryRow(`
		SELECT id, nombre, apellido, dni, numero_licencia
		FROM conductores WHERE id=?`, id).
		Scan(&d.ID, &d.FirstName, &d.LastName, &d.DocumentID, &d.LicenseNumber)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "conductor"}
	}
	return d, err
}

func (r DriverRepository) Create(d models.Driver) (models.Driver, error) {
	res, err := r.DB.Exec(`
		INSERT INTO conductores (nombre, apellido, dni, numero_licencia)
		VALUES (?,?,?,?)`,
		d.FirstName, d.LastName, d.DocumentID, d.LicenseNumber)
	if err != nil {
		return d, err
	}
	d.ID, _ = res.LastInsertId()
	return d, nil
}

func (r DriverRepository) Update(d models.Driver) error {
	res, err := r.DB.Exec(`
		UPDATE conductores SET nombre=?, apellido=?, dni=?, numero_licencia=?
		WHERE id=?`,
		d.FirstName, d.LastName, d.DocumentID, d.LicenseNumber, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(d.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r DriverRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM conductores WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "conductor"}
	}
	return nil
}
