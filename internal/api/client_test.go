package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := model.DefaultConfig()
	config.APIURL = server.URL

	return NewClient(config, zap.NewNop()), server
}

func TestListBooks(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/livros", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"titulo":"Dom Casmurro","autor":"Machado de Assis","ano":1899,"reservado":true}]`))
	})

	books, err := client.ListBooks(context.Background())

	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, int64(1), books[0].ID)
	assert.Equal(t, "Dom Casmurro", books[0].Title)
	assert.Equal(t, "Machado de Assis", books[0].Author)
	assert.Equal(t, 1899, books[0].Year)
	assert.True(t, books[0].Reserved)
}

func TestRequestHeaders(t *testing.T) {
	var gotContentType, gotRequestID string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.ListPeople(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.NotEmpty(t, gotRequestID)
}

func TestCreateFineSendsWirePayload(t *testing.T) {
	var body []byte
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/multas", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"id":42,"valor":7.5,"pago":false}`))
	})

	reservationID := int64(7)
	fine, err := client.CreateFine(context.Background(), model.FineRequest{
		PersonID:      3,
		ReservationID: &reservationID,
		Amount:        7.5,
		Description:   "Atraso de 3 dia(s)",
		IssuedAt:      time.Date(2025, 8, 11, 12, 0, 0, 0, time.UTC),
		Paid:          false,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), fine.ID)

	payload := string(body)
	assert.Contains(t, payload, `"pessoaId":3`)
	assert.Contains(t, payload, `"reservaId":7`)
	assert.Contains(t, payload, `"valor":7.5`)
	assert.Contains(t, payload, `"descricao":"Atraso de 3 dia(s)"`)
	assert.Contains(t, payload, `"pago":false`)
}

func TestReturnReservationHitsDevolver(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.ReturnReservation(context.Background(), 5)

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/reservas/5/devolver", gotPath)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
		wantUser    string
	}{
		{"bad request", 400, `{"message":"ano invalido"}`, "ano invalido", "Invalid data."},
		{"not found", 404, ``, "", "Resource not found."},
		{"conflict", 409, `{"message":"livro ja reservado"}`, "livro ja reservado", "Operation not allowed (conflict)."},
		{"server error", 500, `{"message":"boom"}`, "boom", "Server failure."},
		{"unmapped", 418, ``, "", "Request failed."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.ListBooks(context.Background())

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantUser, apiErr.UserMessage())
		})
	}
}

func TestConnectionFailureIsStatusZero(t *testing.T) {
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := client.ListBooks(context.Background())

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Status)
	assert.Equal(t, "Could not reach the server.", apiErr.UserMessage())
}

func TestIsConflict(t *testing.T) {
	assert.True(t, IsConflict(&Error{Status: 409}))
	assert.False(t, IsConflict(&Error{Status: 500}))
	assert.False(t, IsConflict(context.Canceled))
}
