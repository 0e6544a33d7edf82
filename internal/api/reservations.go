package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/raccoonbooks/biblio-cli/internal/model"
)

func (c *Client) ListReservations(ctx context.Context) ([]model.Reservation, error) {
	var reservations []model.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservas", nil, &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (c *Client) CreateReservation(ctx context.Context, req model.ReservationRequest) (model.Reservation, error) {
	var created model.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservas", req, &created); err != nil {
		return model.Reservation{}, err
	}
	return created, nil
}

// ReturnReservation closes an open reservation server-side. No body;
// the server stamps the end date itself.
func (c *Client) ReturnReservation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/reservas/%d/devolver", id), nil, nil)
}

func (c *Client) CancelReservation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reservas/%d", id), nil, nil)
}
