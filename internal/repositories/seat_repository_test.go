package repositories

import (
	"testing"

	"perubus/internal/domain"
	"perubus/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func seatRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "bus_id", "piso", "fila", "columna", "descripcion", "estado"})
}

func TestSeatListByBus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM asientos").WithArgs(int64(4)).
		WillReturnRows(seatRows().
			AddRow(1, 4, 1, "A", "1", "A1", "DISPONIBLE").
			AddRow(2, 4, 1, "A", "2", "A2", "OCUPADO"))

	repo := SeatRepository{DB: db}
	seats, err := repo.ListByBus(4)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(seats) != 2 {
		t.Fatalf("got %d seats", len(seats))
	}
	if seats[0].Label != "A1" || seats[1].Status != models.SeatOccupied {
		t.Fatalf("rows mapped wrong: %+v", seats)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeatGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM asientos").WithArgs(int64(99)).
		WillReturnRows(seatRows())

	repo := SeatRepository{DB: db}
	if _, err := repo.GetByID(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestSeatCreateBatchCommitsAllRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO asientos").
		WithArgs(int64(4), 1, "A", "1", "A1", "DISPONIBLE").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO asientos").
		WithArgs(int64(4), 1, "A", "2", "A2", "DISPONIBLE").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()

	repo := SeatRepository{DB: db}
	created, err := repo.CreateBatch(4, []models.Seat{
		{Floor: 1, Row: "A", Column: "1", Label: "A1", Status: models.SeatAvailable},
		{Floor: 1, Row: "A", Column: "2", Label: "A2", Status: models.SeatAvailable},
	})
	if err != nil {
		t.Fatalf("batch error: %v", err)
	}
	if len(created) != 2 || created[0].ID != 10 || created[1].ID != 11 {
		t.Fatalf("ids not assigned: %+v", created)
	}
	if created[0].BusID != 4 || created[1].BusID != 4 {
		t.Fatalf("bus id not forced onto rows: %+v", created)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeatCreateBatchRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO asientos").
		WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectExec("INSERT INTO asientos").
		WillReturnError(errDuplicate{})
	mock.ExpectRollback()

	repo := SeatRepository{DB: db}
	_, err = repo.CreateBatch(4, []models.Seat{
		{Floor: 1, Row: "A", Column: "1", Label: "A1", Status: models.SeatAvailable},
		{Floor: 1, Row: "A", Column: "1", Label: "A1", Status: models.SeatAvailable},
	})
	if err == nil {
		t.Fatal("expected batch error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

type errDuplicate struct{}

func (errDuplicate) Error() string { return "duplicate placement" }

func TestSeatDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM asientos").WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := SeatRepository{DB: db}
	if err := repo.Delete(7); !domain.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
