package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/raccoonbooks/biblio-cli/internal/model"
)

func (c *Client) ListFines(ctx context.Context) ([]model.Fine, error) {
	var fines []model.Fine
	if err := c.do(ctx, http.MethodGet, "/multas", nil, &fines); err != nil {
		return nil, err
	}
	return fines, nil
}

func (c *Client) CreateFine(ctx context.Context, req model.FineRequest) (model.Fine, error) {
	var created model.Fine
	if err := c.do(ctx, http.MethodPost, "/multas", req, &created); err != nil {
		return model.Fine{}, err
	}
	return created, nil
}

func (c *Client) UpdateFine(ctx context.Context, id int64, patch model.FinePatch) (model.Fine, error) {
	var updated model.Fine
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/multas/%d", id), patch, &updated); err != nil {
		return model.Fine{}, err
	}
	return updated, nil
}

func (c *Client) DeleteFine(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/multas/%d", id), nil, nil)
}
