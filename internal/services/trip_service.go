package services

import (
	"database/sql"
	"fmt"
	"time"

	intconfig "perubus/internal/config"
	"perubus/internal/domain"
	"perubus/internal/domain/models"
	"perubus/internal/repositories"
	"perubus/internal/utils"
)

// TripService handles the storefront trip search, decorating results with
// per-bus availability counters.
type TripService struct {
	TripRepo  repositories.TripRepository
	DB        *sql.DB
	RequestID string
}

func (s TripService) trips() repositories.TripRepository {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepository{DB: intconfig.DB}
}

// Search returns the trips for a route on a date, each with its
// asientosDisponibles/asientosTotales counters filled in.
func (s TripService) Search(date string, routeID int64) ([]models.Trip, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, domain.ValidationError{Field: "fecha", Msg: "formato esperado AAAA-MM-DD"}
	}
	if routeID <= 0 {
		return nil, domain.ValidationError{Field: "idRuta", Msg: "id invalido"}
	}

	trips, err := s.trips().Search(date, routeID)
	if err != nil {
		return nil, err
	}

	repo := s.trips()
	for i := range trips {
		available, total, err := repo.SeatCounts(trips[i].BusID)
		if err != nil {
			return nil, err
		}
		trips[i].SeatsAvailable = &available
		trips[i].SeatsTotal = &total
	}

	utils.LogEvent(s.RequestID, "trips", "search", fmt.Sprintf("fecha=%s ruta_id=%d resultados=%d", date, routeID, len(trips)))
	return trips, nil
}
