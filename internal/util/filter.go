package util

import (
	"strconv"
	"strings"

	"github.com/raccoonbooks/biblio-cli/internal/model"
)

// SearchPeople keeps the people whose name, email, phone or address
// contains `query`, case-insensitively.
func SearchPeople(people []model.Person, query string) []model.Person {
	if query == "" {
		return people
	}

	query = strings.ToLower(query)
	var filtered []model.Person

	for _, person := range people {
		if strings.Contains(strings.ToLower(person.Name), query) ||
			strings.Contains(strings.ToLower(person.Email), query) ||
			strings.Contains(strings.ToLower(person.Phone), query) ||
			strings.Contains(strings.ToLower(person.Address), query) {
			filtered = append(filtered, person)
		}
	}

	return filtered
}

// FilterBooks narrows the book list by title, author and year. Empty
// filters match everything; the year filter is a substring match so
// "202" finds the whole decade.
func FilterBooks(books []model.Book, title, author, year string) []model.Book {
	title = strings.ToLower(strings.TrimSpace(title))
	author = strings.ToLower(strings.TrimSpace(author))
	year = strings.TrimSpace(year)

	var filtered []model.Book
	for _, book := range books {
		if title != "" && !strings.Contains(strings.ToLower(book.Title), title) {
			continue
		}
		if author != "" && !strings.Contains(strings.ToLower(book.Author), author) {
			continue
		}
		if year != "" && !strings.Contains(strconv.Itoa(book.Year), year) {
			continue
		}
		filtered = append(filtered, book)
	}

	return filtered
}

// SearchReservations keeps the reservations whose person name or book
// title contains `query`.
func SearchReservations(reservations []model.Reservation, query string) []model.Reservation {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return reservations
	}

	var filtered []model.Reservation
	for _, r := range reservations {
		personName := ""
		if r.Person != nil {
			personName = r.Person.Name
		}
		bookTitle := ""
		if r.Book != nil {
			bookTitle = r.Book.Title
		}
		if strings.Contains(strings.ToLower(personName), query) ||
			strings.Contains(strings.ToLower(bookTitle), query) {
			filtered = append(filtered, r)
		}
	}

	return filtered
}

// OpenReservations drops everything that already has an end date.
func OpenReservations(reservations []model.Reservation) []model.Reservation {
	var open []model.Reservation
	for _, r := range reservations {
		if r.Open() {
			open = append(open, r)
		}
	}
	return open
}
