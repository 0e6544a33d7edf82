package util

import (
	"testing"
	"time"

	"github.com/raccoonbooks/biblio-cli/internal/model"
)

func TestSearchPeople(t *testing.T) {
	people := []model.Person{
		{ID: 1, Name: "Ana Souza", Email: "ana@example.com", Address: "Rua A"},
		{ID: 2, Name: "Bruno Lima", Email: "bruno@example.com", Phone: "11 99999-0000", Address: "Rua B"},
	}

	got := SearchPeople(people, "ana")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("SearchPeople(ana) = %v, want person 1", got)
	}

	got = SearchPeople(people, "99999")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("SearchPeople(99999) = %v, want person 2", got)
	}

	got = SearchPeople(people, "")
	if len(got) != 2 {
		t.Errorf("SearchPeople(empty) = %v, want both", got)
	}
}

func TestFilterBooks(t *testing.T) {
	books := []model.Book{
		{ID: 1, Title: "Dom Casmurro", Author: "Machado de Assis", Year: 1899},
		{ID: 2, Title: "Vidas Secas", Author: "Graciliano Ramos", Year: 1938},
	}

	got := FilterBooks(books, "dom", "", "")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("FilterBooks(title=dom) = %v, want book 1", got)
	}

	got = FilterBooks(books, "", "ramos", "")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("FilterBooks(author=ramos) = %v, want book 2", got)
	}

	got = FilterBooks(books, "", "", "19")
	if len(got) != 2 {
		t.Errorf("FilterBooks(year=19) = %v, want both", got)
	}

	got = FilterBooks(books, "dom", "ramos", "")
	if len(got) != 0 {
		t.Errorf("FilterBooks(title=dom author=ramos) = %v, want none", got)
	}
}

func TestOpenReservations(t *testing.T) {
	start := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 5)
	reservations := []model.Reservation{
		{ID: 1, StartDate: &start},
		{ID: 2, StartDate: &start, EndDate: &end},
	}

	got := OpenReservations(reservations)
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("OpenReservations = %v, want reservation 1", got)
	}
}

func TestSearchReservations(t *testing.T) {
	reservations := []model.Reservation{
		{ID: 1, Person: &model.Person{Name: "Ana"}, Book: &model.Book{Title: "Dom Casmurro"}},
		{ID: 2, Person: &model.Person{Name: "Bruno"}, Book: &model.Book{Title: "Vidas Secas"}},
		{ID: 3},
	}

	got := SearchReservations(reservations, "casmurro")
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("SearchReservations(casmurro) = %v, want reservation 1", got)
	}

	got = SearchReservations(reservations, "bruno")
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("SearchReservations(bruno) = %v, want reservation 2", got)
	}

	got = SearchReservations(reservations, "")
	if len(got) != 3 {
		t.Errorf("SearchReservations(empty) = %v, want all", got)
	}
}
