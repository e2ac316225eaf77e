package models

type Agency struct {
	ID        int64  `json:"idAgencia"`
	Region    string `json:"departamento"`
	Province  string `json:"provincia"`
	Address   string `json:"direccion"`
	Landmark  string `json:"referencia"`
	StopOrder int    `json:"orden,omitempty"`
}

type Route struct {
	ID         int64    `json:"idRuta"`
	Name       string   `json:"nombre"`
	AgencyIDs  []int64  `json:"agenciasIds,omitempty"`
	StopOrders []int    `json:"ordenAgencias,omitempty"`
	Agencies   []Agency `json:"agencias,omitempty"`
}

type Driver struct {
	ID            int64  `json:"idTrabajador"`
	FirstName     string `json:"nombre"`
	LastName      string `json:"apellido"`
	DocumentID    string `json:"dni"`
	LicenseNumber string `json:"numeroLicenciaConduccion"`
}

type Bus struct {
	ID       int64   `json:"idBus"`
	Plate    string  `json:"placa"`
	DriverID int64   `json:"idConductor"`
	Driver   *Driver `json:"conductor,omitempty"`
}

type Trip struct {
	ID            int64   `json:"idViaje"`
	DepartureTime string  `json:"horaSalida"`
	DepartureDate string  `json:"fechaSalida"`
	Cost          float64 `json:"costo"`
	RouteID       int64   `json:"idRuta"`
	BusID         int64   `json:"idBus"`
	Route         *Route  `json:"ruta,omitempty"`
	Bus           *Bus    `json:"bus,omitempty"`

	// Availability counters are filled by the trip search, not stored.
	SeatsAvailable *int `json:"asientosDisponibles,omitempty"`
	SeatsTotal     *int `json:"asientosTotales,omitempty"`
}

// TripStatus is the public status-lookup projection: no seat or passenger
// data, just where the trip stands.
type TripStatus struct {
	TripID        int64  `json:"idViaje"`
	Status        string `json:"estado"`
	RouteName     string `json:"ruta"`
	BusPlate      string `json:"bus"`
	DepartureDate string `json:"fechaSalida"`
	DepartureTime string `json:"horaSalida"`
}
