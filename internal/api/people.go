package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/raccoonbooks/biblio-cli/internal/model"
)

func (c *Client) ListPeople(ctx context.Context) ([]model.Person, error) {
	var people []model.Person
	if err := c.do(ctx, http.MethodGet, "/pessoas", nil, &people); err != nil {
		return nil, err
	}
	return people, nil
}

func (c *Client) GetPerson(ctx context.Context, id int64) (model.Person, error) {
	var person model.Person
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/pessoas/%d", id), nil, &person); err != nil {
		return model.Person{}, err
	}
	return person, nil
}

func (c *Client) CreatePerson(ctx context.Context, person model.Person) (model.Person, error) {
	var created model.Person
	if err := c.do(ctx, http.MethodPost, "/pessoas", person, &created); err != nil {
		return model.Person{}, err
	}
	return created, nil
}

func (c *Client) UpdatePerson(ctx context.Context, id int64, person model.Person) (model.Person, error) {
	var updated model.Person
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/pessoas/%d", id), person, &updated); err != nil {
		return model.Person{}, err
	}
	return updated, nil
}

func (c *Client) DeletePerson(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pessoas/%d", id), nil, nil)
}
