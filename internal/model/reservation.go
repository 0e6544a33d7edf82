package model

import "time"

// Reservation links one person to one book. EndDate is nil while the
// book is still out; the server sets it on return or cancellation.
type Reservation struct {
	ID        int64      `json:"id,omitempty"`
	StartDate *time.Time `json:"dataIni,omitempty"`
	EndDate   *time.Time `json:"dataFim,omitempty"`
	Person    *Person    `json:"pessoa,omitempty"`
	Book      *Book      `json:"livro,omitempty"`
}

// Open reports whether the reservation still holds the book.
func (r Reservation) Open() bool {
	return r.EndDate == nil
}

// ReservationRequest is the POST /reservas payload.
type ReservationRequest struct {
	PersonID int64 `json:"pessoaId"`
	BookID   int64 `json:"livroId"`
}
