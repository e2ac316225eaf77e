package repositories

import (
	"database/sql"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// UserRepository wraps DB access for usuarios (the traveling customers, not
// back-office accounts).
type UserRepository struct {
	DB *sql.DB
}

const userSelect = `
	SELECT id, dni, nombres, apellidos, edad, COALESCE(permisos,'')
	FROM usuarios`

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.DB.Query(userSelect + ` ORDER BY apellidos, nombres`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.DocumentID, &u.FirstNames, &u.LastNames, &u.Age, &u.Permissions); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(userSelect+` WHERE id=?`, id).
		Scan(&u.ID, &u.DocumentID, &u.FirstNames, &u.LastNames, &u.Age, &u.Permissions)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "usuario"}
	}
	return u, err
}

func (r UserRepository) GetByDocumentID(dni string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(userSelect+` WHERE dni=?`, dni).
		Scan(&u.ID, &u.DocumentID, &u.FirstNames, &u.LastNames, &u.Age, &u.Permissions)
	if err == sql.ErrNoRows {
		return u, domain.NotFoundError{Resource: "usuario"}
	}
	return u, err
}

func (r UserRepository) Create(u models.User) (models.User, error) {
	res, err := r.DB.Exec(`
		INSERT INTO usuarios (dni, nombres, apellidos, edad, permisos)
		VALUES (?,?,?,?,?)`,
		u.DocumentID, u.FirstNames, u.LastNames, u.Age, u.Permissions)
	if err != nil {
		return u, err
	}
	u.ID, _ = res.LastInsertId()
	return u, nil
}

func (r UserRepository) Update(u models.User) error {
	res, err := r.DB.Exec(`
		UPDATE usuarios SET dni=?, nombres=?, apellidos=?, edad=?, permisos=?
		WHERE id=?`,
		u.DocumentID, u.FirstNames, u.LastNames, u.Age, u.Permissions, u.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(u.ID); err != nil {
			return err
		}
	}
	return nil
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.DB.Exec(`DELETE FROM usuarios WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "usuario"}
	}
	return nil
}
