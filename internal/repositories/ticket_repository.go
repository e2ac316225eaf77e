package repositories

import (
	"database/sql"
	"time"

	"perubus/internal/domain"
	"perubus/internal/domain/models"
)

// TicketRepository wraps DB access for pasajes.
type TicketRepository struct {
	DB *sql.DB
}

const ticketSelect = `
	SELECT id, DATE_FORMAT(fecha_compra, '%Y-%m-%d %H:%i'), precio,
	       COALESCE(usuario_id, 0), viaje_id, asiento_id
	FROM pasajes`

func (r TicketRepository) List() ([]models.Ticket, error) {
	rows, err := r.DB.Query(ticketSelect + ` ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r TicketRepository) ListByUser(userID int64) ([]models.Ticket, error) {
	rows, err := r.DB.Query(ticketSelect+` WHERE usuario_id=? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r TicketRepository) GetByID(id int64) (models.Ticket, error) {
	var t models.Ticket
	err := r.DB.QueryRow(ticketSelect+` WHERE id=?`, id).
		Scan(&t.ID, &t.PurchaseDate, &t.Price, &t.UserID, &t.TripID, &t.SeatID)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "pasaje"}
	}
	return t, err
}

// InsertTicket writes one sold ticket inside the purchase transaction.
func InsertTicket(tx *sql.Tx, t models.Ticket) (int64, error) {
	res, err := tx.Exec(`
		INSERT INTO pasajes (fecha_compra, precio, usuario_id, viaje_id, asiento_id)
		VALUES (?,?,NULLIF(?,0),?,?)`,
		time.Now(), t.Price, t.UserID, t.TripID, t.SeatID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func collectTickets(rows *sql.Rows) ([]models.Ticket, error) {
	list := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.PurchaseDate, &t.Price, &t.UserID, &t.TripID, &t.SeatID); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}
