package repositories

import (
	"database/sql"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// AgencyRepository wraps DB access for agencias.
type AgencyRepository struct {
	DB *sql.DB
}

func (r AgencyRepository) List() ([]models.Agency, error) {
	rows, err := r.DB.Query(`
		SELECT id, departamento, provincia, direccion, COALESCE(referencia,'')
		FROM agencias
		ORDER BY departamento, provincia`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Agency{}
	for rows.Next() {
		var a models.Agency
		if err := rows.Scan(&a.ID, &a.Region, &a.Province, &a.Address, &a.Landmark); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r AgencyRepository) GetByID(id int64) (models.Agency, error) {
	var a models.Agency
	err := r.DB.QueryRow(`
		SELECT id, departamento, provincia, direccion, COALESCE(referencia,'')
		FROM agencias WHERE id = ?`, id).
		Scan(&a.ID, &a.Region, &a.Province, &a.Address, &a.Landmark)
	if err == sql.ErrNoRows {
		return a, domain.NotFoundError{Resource: "agencia"}
	}
	return a, err
}

func (r AgencyRepository) Create(a models.Agency) (models.Agency, error) {
	res, err := r.DB.Exec(`
		INSERT INTO agencias (departamento, provincia, direccion, referencia)
		VALUES (?,?,?,?)`,
		a.Region, a.Province, a.Address, a.Landmark)
	if err != nil {
		return a, err
	}
	a.ID, _ = res.LastInsertId()
	return a, nil
}

func (r AgencyRepository) Update(a models.Agency) error {
	res, err := r.DB.Exec(`
		UPDATE agencias SET departamento=?, provincia=?, direccion=?, referencia=?
		WHERE id=?`,
		a.Region, a.Province, a.Address, a.Landmark, a.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(a.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r AgencyRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM agencias WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "agencia"}
	}
	return nil
}
