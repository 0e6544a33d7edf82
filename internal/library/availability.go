package library

import "github.com/raccoonbooks/biblio-cli/internal/model"

// Holder identifies who currently holds a reserved book.
type Holder struct {
	ID   int64
	Name string
}

// Availability is the derived view of which books are out. It is
// recomputed wholesale from the latest reservation snapshot, never
// patched incrementally.
type Availability struct {
	reserved map[int64]bool
	holders  map[int64]Holder
}

// Resolve walks the reservation list and collects the books with an
// open reservation plus who holds each one. A reservation counts only
// when it references a book and has no end date; one without a person
// still marks the book reserved but contributes no holder. If two open
// reservations reference the same book (a data anomaly the server is
// supposed to prevent), the later one wins the holder slot.
func Resolve(reservations []model.Reservation) Availability {
	availability := Availability{
		reserved: make(map[int64]bool),
		holders:  make(map[int64]Holder),
	}

	for _, r := range reservations {
		if r.Book == nil || r.Book.ID == 0 || !r.Open() {
			continue
		}
		availability.reserved[r.Book.ID] = true
		if r.Person != nil && r.Person.ID != 0 {
			availability.holders[r.Book.ID] = Holder{ID: r.Person.ID, Name: r.Person.Name}
		}
	}

	return availability
}

// IsReserved merges the book's own denormalized flag with the derived
// set. Either source saying "reserved" wins, so staleness blocks a
// second reservation instead of allowing a double booking.
func (a Availability) IsReserved(book model.Book) bool {
	return book.Reserved || a.reserved[book.ID]
}

// Holder returns who holds the book, when known.
func (a Availability) Holder(bookID int64) (Holder, bool) {
	holder, ok := a.holders[bookID]
	return holder, ok
}

// Available filters out every book the resolver considers reserved.
// This is the guard that keeps already-reserved books off the offer
// list before any request is made.
func (a Availability) Available(books []model.Book) []model.Book {
	var available []model.Book
	for _, book := range books {
		if !a.IsReserved(book) {
			available = append(available, book)
		}
	}
	return available
}
