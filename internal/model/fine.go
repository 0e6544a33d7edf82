package model

import "time"

// Fine is a monetary penalty, normally created as a side effect of a
// late return but editable and deletable on its own.
type Fine struct {
	ID          int64        `json:"id,omitempty"`
	Person      *Person      `json:"pessoa,omitempty"`
	Reservation *Reservation `json:"reserva,omitempty"`
	Amount      float64      `json:"valor"`
	Description string       `json:"descricao,omitempty"`
	IssuedAt    time.Time    `json:"dataMulta"`
	Paid        bool         `json:"pago"`
}

// FineRequest is the POST /multas payload.
type FineRequest struct {
	PersonID      int64     `json:"pessoaId"`
	ReservationID *int64    `json:"reservaId,omitempty"`
	Amount        float64   `json:"valor"`
	Description   string    `json:"descricao"`
	IssuedAt      time.Time `json:"dataMulta"`
	Paid          bool      `json:"pago"`
}

// FinePatch is a partial PUT /multas/{id} payload. Only the fields that
// are set get sent.
type FinePatch struct {
	Amount      *float64 `json:"valor,omitempty"`
	Description *string  `json:"descricao,omitempty"`
	Paid        *bool    `json:"pago,omitempty"`
}
