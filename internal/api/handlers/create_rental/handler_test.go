package create_rental

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/domain"
	createRental "github.com/m04kA/SMC-RentalService/internal/usecase/create_rental"
)

type stubUseCase struct {
	resp *createRental.Response
	err  error
	got  *createRental.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createRental.Request) (*createRental.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *stubUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/rentals", h.Handle).Methods(http.MethodPost)
	return r
}

func doRequest(t *testing.T, uc *stubUseCase, body string, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/rentals", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)
	return rec
}

const validBody = `{
	"itemId": 7,
	"date": "2026-03-04",
	"period": "matutino",
	"classSlot": "2 aula",
	"room": "Sala 12"
}`

func TestHandle_Success(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &createRental.Response{
		ID:        42,
		ItemID:    7,
		ItemName:  "Projetor",
		Date:      time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC),
		Period:    domain.PeriodMatutino,
		ClassSlot: domain.ClassSlot2,
		Room:      "Sala 12",
		ClientID:  10,
		CreatedAt: now,
		UpdatedAt: now,
	}}

	rec := doRequest(t, uc, validBody, "10")
	require.Equal(t, http.StatusCreated, rec.Code)

	// Актор берется из заголовка, дата и енумы распарсены
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(10), uc.got.ActorID)
	assert.Equal(t, domain.PeriodMatutino, uc.got.Period)
	assert.Equal(t, domain.ClassSlot2, uc.got.ClassSlot)

	var resp RentalResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2026-03-04", resp.Date)
	assert.Equal(t, "Projetor", resp.ItemName)
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	rec := doRequest(t, &stubUseCase{}, validBody, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"broken json", `{"itemId":`},
		{"unknown field", `{"itemId": 7, "bogus": true}`},
		{"bad date", `{"itemId": 7, "date": "04/03/2026", "period": "matutino", "classSlot": "1 aula"}`},
		{"bad period", `{"itemId": 7, "date": "2026-03-04", "period": "noturno", "classSlot": "1 aula"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{}, tt.body, "10")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"exclusion blocked", createRental.ErrExclusionBlocked, http.StatusConflict},
		{"slot conflict", createRental.ErrSlotConflict, http.StatusConflict},
		{"quota exceeded", createRental.ErrQuotaExceeded, http.StatusUnprocessableEntity},
		{"past date", createRental.ErrPastOrTodayDate, http.StatusUnprocessableEntity},
		{"item not found", createRental.ErrItemNotFound, http.StatusNotFound},
		{"actor not found", createRental.ErrActorNotFound, http.StatusNotFound},
		{"access denied", createRental.ErrAccessDenied, http.StatusForbidden},
		{"invalid input", createRental.ErrInvalidInput, http.StatusBadRequest},
		{"internal", createRental.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, validBody, "10")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandle_ConflictMessageNamesOwner(t *testing.T) {
	uc := &stubUseCase{err: &createRental.SlotConflictError{
		Conflicting:   &domain.Rental{ID: 99, ClientID: 55},
		OwnerUsername: "maria",
	}}

	rec := doRequest(t, uc, validBody, "10")
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "maria")
}
