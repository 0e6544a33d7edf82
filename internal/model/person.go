package model

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
)

// Person is a library member. The wire format keeps the Portuguese
// field names used by the backend.
type Person struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"nome"`
	Email   string `json:"email"`
	Phone   string `json:"tel,omitempty"`
	Address string `json:"endereco"`
}

// Validate runs the client-side checks that block a submission before
// any request is made.
func (p Person) Validate() error {
	if len(strings.TrimSpace(p.Name)) < 3 {
		return fmt.Errorf("name must have at least 3 characters")
	}
	if !govalidator.IsEmail(p.Email) {
		return fmt.Errorf("invalid email: %q", p.Email)
	}
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("address is required")
	}
	return nil
}
