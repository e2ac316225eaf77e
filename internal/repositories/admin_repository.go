package repositories

import (
	"database/sql"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// AdminRepository wraps DB access for administradores. Password hashes never
// leave this package except through GetCredentials.
type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) List() ([]models.Admin, error) {
	rows, err := r.DB.Query(`
		SELECT id, nombre, apellido, correo FROM administradores ORDER BY apellido`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Admin{}
	for rows.Next() {
		var a models.Admin
		if err := rows.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// GetCredentials loads an admin by email including the password hash, for
// login verification only.
func (r AdminRepository) GetCredentials(email string) (models.Admin, string, error) {
	var a models.Admin
	var hash string
	err := r.DB.QueryRow(`
		SELECT id, nombre, apellido, correo, password_hash
		FROM administradores WHERE correo=?`, email).
		Scan(&a.ID, &a.FirstName, &a.LastName, &a.Email, &hash)
	if err == sql.ErrNoRows {
		return a, "", domain.NotFoundError{Resource: "administrador"}
	}
	return a, hash, err
}

func (r AdminRepository) Create(a models.Admin, passwordHash string) (models.Admin, error) {
	res, err := r.DB.Exec(`
		INSERT INTO administradores (nombre, apellido, correo, password_hash)
		VALUES (?,?,?,?)`,
		a.FirstName, a.LastName, a.Email, passwordHash)
	if err != nil {
		return a, err
	}
	a.ID, _ = res.LastInsertId()
	a.Password = ""
	return a, nil
}

func (r AdminRepository) Update(a models.Admin, passwordHash string) error {
	var (
		res sql.Result
		err error
	)
	if passwordHash != "" {
		res, err = r.DB.Exec(`
			UPDATE administradores SET nombre=?, apellido=?, correo=?, password_hash=?
			WHERE id=?`,
			a.FirstName, a.LastName, a.Email, passwordHash, a.ID)
	} else {
		res, err = r.DB.Exec(`
			UPDATE administradores SET nombre=?, apellido=?, correo=?
			WHERE id=?`,
			a.FirstName, a.LastName, a.Email, a.ID)
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		var exists int64
		if err := r.DB.QueryRow(`SELECT id FROM administradores WHERE id=?`, a.ID).Scan(&exists); err == sql.ErrNoRows {
			return domain.NotFoundError{Resource: "administrador"}
		}
	}
	return nil
}

func (r AdminRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM administradores WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "administrador"}
	}
	return nil
}
