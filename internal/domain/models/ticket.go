package models

// Passenger is the form-shaped record bound to one selected seat. Edad stays
// a string until submit time; the storefront sends whatever was typed.
type Passenger struct {
	DocumentID string `json:"dni"`
	FirstNames string `json:"nombres"`
	LastNames  string `json:"apellidos"`
	Age        string `json:"edad"`
}

func (p Passenger) Complete() bool {
	return p.DocumentID != "" && p.FirstNames != "" && p.LastNames != "" && p.Age != ""
}

// PurchasePassenger is the submit-time projection with the age parsed.
type PurchasePassenger struct {
	DocumentID string `json:"dni"`
	FirstNames string `json:"nombres"`
	LastNames  string `json:"apellidos"`
	Age        int    `json:"edad"`
}

// PurchasePayload is the exact body handed to the booking collaborator.
type PurchasePayload struct {
	TotalToPay float64             `json:"totalPagar"`
	Passengers []PurchasePassenger `json:"pasajeros"`
	RouteID    int64               `json:"idRuta"`
	TripID     int64               `json:"idViaje"`
	SeatIDs    []int64             `json:"asientosIds"`
}

// PurchaseReceipt is what the collaborator echoes back. Full trip and seat
// details are not required to round-trip; the confirmation is completed from
// locally held state.
type PurchaseReceipt struct {
	TicketIDs   []int64 `json:"pasajesIds"`
	ReferenceID int64   `json:"idViaje"`
}

// Confirmation is the immutable snapshot of a completed purchase.
type Confirmation struct {
	ReferenceID   int64       `json:"idViaje"`
	RouteName     string      `json:"ruta"`
	DepartureDate string      `json:"fechaSalida"`
	DepartureTime string      `json:"horaSalida"`
	BusPlate      string      `json:"placa"`
	SeatLabels    []string    `json:"asientosSeleccionadosDetalles"`
	Passengers    []Passenger `json:"pasajeros"`
	TotalPaid     float64     `json:"totalPagar"`
}

// Ticket is one sold pasaje row (one seat, one passenger, one trip).
type Ticket struct {
	ID           int64   `json:"idPasaje"`
	PurchaseDate string  `json:"fechaCompra"`
	Price        float64 `json:"precio"`
	UserID       int64   `json:"idUsuario"`
	TripID       int64   `json:"idViaje"`
	SeatID       int64   `json:"idAsiento"`
	User         *User   `json:"usuario,omitempty"`
	Trip         *Trip   `json:"viaje,omitempty"`
	Seat         *Seat   `json:"asiento,omitempty"`
}

type User struct {
	ID          int64  `json:"idUsuario"`
	DocumentID  string `json:"dni"`
	FirstNames  string `json:"nombres"`
	LastNames   string `json:"apellidos"`
	Age         int    `json:"edad"`
	Permissions string `json:"permisos"`
}

type Admin struct {
	ID        int64  `json:"idAdministrador"`
	FirstName string `json:"nombre"`
	LastName  string `json:"apellido"`
	Email     string `json:"correo"`
	Password  string `json:"contrasena,omitempty"`
}
