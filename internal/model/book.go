package model

import (
	"fmt"
	"strings"
)

// Book is a catalog entry. Reserved mirrors the server-denormalized
// `reservado` flag; it is not authoritative and gets reconciled against
// the open reservations by the library package.
type Book struct {
	ID       int64  `json:"id,omitempty"`
	Title    string `json:"titulo"`
	Author   string `json:"autor"`
	Year     int    `json:"ano"`
	Reserved bool   `json:"reservado,omitempty"`
}

func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(b.Author) == "" {
		return fmt.Errorf("author is required")
	}
	if b.Year <= 0 {
		return fmt.Errorf("year must be a positive number")
	}
	return nil
}
