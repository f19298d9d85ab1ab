// services/tipopago/internal/models/tipopago.go
package models

import "time"

const (
	EstadoInactivo = 0
	EstadoActivo   = 1
)

// TipoPago is a named mode of payment accepted by the shop (cash, card, transfer...).
// JSON names follow the contract the admin front end already speaks.
type TipoPago struct {
	ID          int       `json:"idTipoPago" db:"id_tipo_pago"`
	Descripcion string    `json:"descripcionTipoPago" db:"descripcion_tipo_pago"`
	Estado      int       `json:"estadoTipoPago" db:"estado_tipo_pago"`
	CreatedAt   time.Time `json:"-" db:"created_at"`
	UpdatedAt   time.Time `json:"-" db:"updated_at"`
}

type CreateTipoPagoRequest struct {
	Descripcion string `json:"descripcionTipoPago" binding:"max=100"`
	Estado      int    `json:"estadoTipoPago" binding:"oneof=0 1"`
}

type CreateTipoPagoResponse struct {
	Success  bool      `json:"success"`
	TipoPago *TipoPago `json:"tipoPago"`
}

// Event is an audit record of a change to the catalog.
type Event struct {
	Type       string    `json:"type" bson:"type"`
	TipoPagoID int       `json:"idTipoPago" bson:"id_tipo_pago"`
	Payload    *TipoPago `json:"payload" bson:"payload"`
	RequestID  string    `json:"request_id,omitempty" bson:"request_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}

const EventTipoPagoCreated = "tipopago.created"

// Database schema
const TipoPagoSchema = `
CREATE TABLE IF NOT EXISTS tipo_pago (
    id_tipo_pago SERIAL PRIMARY KEY,
    descripcion_tipo_pago VARCHAR(100) NOT NULL,
    estado_tipo_pago SMALLINT NOT NULL DEFAULT 1,
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW(),

    CONSTRAINT uq_tipo_pago_descripcion UNIQUE (descripcion_tipo_pago)
);
`
