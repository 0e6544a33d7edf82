package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/raccoonbooks/biblio-cli/internal/model"
)

func (c *Client) ListBooks(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := c.do(ctx, http.MethodGet, "/livros", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *Client) GetBook(ctx context.Context, id int64) (model.Book, error) {
	var book model.Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/livros/%d", id), nil, &book); err != nil {
		return model.Book{}, err
	}
	return book, nil
}

func (c *Client) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	var created model.Book
	if err := c.do(ctx, http.MethodPost, "/livros", book, &created); err != nil {
		return model.Book{}, err
	}
	return created, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, book model.Book) (model.Book, error) {
	var updated model.Book
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/livros/%d", id), book, &updated); err != nil {
		return model.Book{}, err
	}
	return updated, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/livros/%d", id), nil, nil)
}
