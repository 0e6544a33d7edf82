package library

import (
	"testing"
	"time"

	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openReservation(id, bookID, personID int64, personName string) model.Reservation {
	start := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	r := model.Reservation{
		ID:        id,
		StartDate: &start,
		Book:      &model.Book{ID: bookID, Title: "Some Book"},
	}
	if personID != 0 {
		r.Person = &model.Person{ID: personID, Name: personName}
	}
	return r
}

func closedReservation(id, bookID, personID int64) model.Reservation {
	r := openReservation(id, bookID, personID, "Someone")
	end := time.Date(2025, 8, 10, 10, 0, 0, 0, time.UTC)
	r.EndDate = &end
	return r
}

func TestResolveMarksOpenReservations(t *testing.T) {
	availability := Resolve([]model.Reservation{
		openReservation(1, 10, 100, "Ana"),
		closedReservation(2, 20, 200),
	})

	assert.True(t, availability.IsReserved(model.Book{ID: 10}))
	assert.False(t, availability.IsReserved(model.Book{ID: 20}))

	holder, ok := availability.Holder(10)
	require.True(t, ok)
	assert.Equal(t, int64(100), holder.ID)
	assert.Equal(t, "Ana", holder.Name)

	_, ok = availability.Holder(20)
	assert.False(t, ok)
}

func TestResolveSkipsReservationsWithoutBook(t *testing.T) {
	noBook := openReservation(1, 0, 100, "Ana")
	noBook.Book = nil

	zeroBook := openReservation(2, 0, 100, "Ana")

	availability := Resolve([]model.Reservation{noBook, zeroBook})

	assert.False(t, availability.IsReserved(model.Book{ID: 0}))
	assert.Empty(t, availability.Available(nil))
}

func TestResolveHolderlessReservationStillReserves(t *testing.T) {
	availability := Resolve([]model.Reservation{
		openReservation(1, 10, 0, ""),
	})

	assert.True(t, availability.IsReserved(model.Book{ID: 10}))
	_, ok := availability.Holder(10)
	assert.False(t, ok)
}

func TestResolveLastOpenReservationWinsHolder(t *testing.T) {
	// Two open reservations for one book should not happen, but when
	// the data is broken the later row keeps the holder slot.
	availability := Resolve([]model.Reservation{
		openReservation(1, 10, 100, "Ana"),
		openReservation(2, 10, 200, "Bruno"),
	})

	holder, ok := availability.Holder(10)
	require.True(t, ok)
	assert.Equal(t, "Bruno", holder.Name)
}

func TestIsReservedMergesDenormalizedFlag(t *testing.T) {
	availability := Resolve(nil)

	// No open reservation, but the record itself says reserved.
	assert.True(t, availability.IsReserved(model.Book{ID: 10, Reserved: true}))
	assert.False(t, availability.IsReserved(model.Book{ID: 10}))
}

func TestAvailableFiltersReservedBooks(t *testing.T) {
	books := []model.Book{
		{ID: 1, Title: "Free"},
		{ID: 2, Title: "Held"},
		{ID: 3, Title: "Flagged", Reserved: true},
	}
	availability := Resolve([]model.Reservation{
		openReservation(1, 2, 100, "Ana"),
	})

	available := availability.Available(books)

	require.Len(t, available, 1)
	assert.Equal(t, int64(1), available[0].ID)
}

// A book counts as reserved when either its own flag is set or some
// open reservation references it.
func TestReservedProperty(t *testing.T) {
	books := []model.Book{
		{ID: 1},
		{ID: 2, Reserved: true},
		{ID: 3},
		{ID: 4},
	}
	reservations := []model.Reservation{
		openReservation(1, 1, 100, "Ana"),
		closedReservation(2, 3, 200),
	}

	availability := Resolve(reservations)

	for _, book := range books {
		expected := book.Reserved
		for _, r := range reservations {
			if r.Book != nil && r.Book.ID == book.ID && r.EndDate == nil {
				expected = true
			}
		}
		assert.Equal(t, expected, availability.IsReserved(book), "book %d", book.ID)
	}
}
