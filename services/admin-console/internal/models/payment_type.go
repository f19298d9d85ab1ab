// services/admin-console/internal/models/payment_type.go
package models

// StatusActive marks an entry as in use.
const StatusActive = 1

// PaymentType mirrors one element of GET /tipopago/.
type PaymentType struct {
	ID          int    `json:"idTipoPago"`
	Description string `json:"descripcionTipoPago"`
	Status      int    `json:"estadoTipoPago"`
}

// CreateRequest is the exact body of POST /tipopago/agregar.
type CreateRequest struct {
	Description string `json:"descripcionTipoPago"`
	Status      int    `json:"estadoTipoPago"`
}
