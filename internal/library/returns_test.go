package library

import (
	"context"
	"testing"
	"time"

	"github.com/raccoonbooks/biblio-cli/internal/api"
	"github.com/raccoonbooks/biblio-cli/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeReturnAPI struct {
	nextFineID int64
	createErr  error
	closeErr   error
	deleteErr  error

	createdFines []model.FineRequest
	deletedFines []int64
	closed       []int64
}

func (f *fakeReturnAPI) CreateFine(ctx context.Context, req model.FineRequest) (model.Fine, error) {
	if f.createErr != nil {
		return model.Fine{}, f.createErr
	}
	f.createdFines = append(f.createdFines, req)
	return model.Fine{ID: f.nextFineID, Amount: req.Amount}, nil
}

func (f *fakeReturnAPI) DeleteFine(ctx context.Context, id int64) error {
	f.deletedFines = append(f.deletedFines, id)
	return f.deleteErr
}

func (f *fakeReturnAPI) ReturnReservation(ctx context.Context, id int64) error {
	if f.closeErr != nil {
		return f.closeErr
	}
	f.closed = append(f.closed, id)
	return nil
}

func newTestService(fake *fakeReturnAPI, now time.Time) *ReturnService {
	service := NewReturnService(fake, zap.NewNop())
	service.now = func() time.Time { return now }
	return service
}

func lateReservation(start time.Time) model.Reservation {
	return model.Reservation{
		ID:        7,
		StartDate: &start,
		Person:    &model.Person{ID: 3, Name: "Ana"},
		Book:      &model.Book{ID: 5, Title: "Dom Casmurro"},
	}
}

func TestAssessTenDaysOut(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, 10)

	assessment := Assess(&start, now)

	assert.Equal(t, 3, assessment.OverdueDays)
	assert.Equal(t, 7.50, assessment.Fee)
}

func TestAssessWithinLoanPeriod(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	for _, days := range []int{0, 3, 7} {
		assessment := Assess(&start, start.AddDate(0, 0, days))
		assert.Equal(t, 0, assessment.OverdueDays, "%d days out", days)
		assert.Equal(t, 0.0, assessment.Fee)
	}
}

func TestAssessNilStartMeansZeroElapsed(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

	assessment := Assess(nil, now)

	assert.Equal(t, 0, assessment.OverdueDays)
	assert.Equal(t, now.AddDate(0, 0, LoanPeriodDays), assessment.DueDate)
}

func TestAssessPartialDayRoundsUp(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	now := start.AddDate(0, 0, LoanPeriodDays).Add(30 * time.Minute)

	assessment := Assess(&start, now)

	assert.Equal(t, 1, assessment.OverdueDays)
	assert.Equal(t, 2.50, assessment.Fee)
}

func TestReturnLate(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeReturnAPI{nextFineID: 42}
	service := newTestService(fake, start.AddDate(0, 0, 10))

	outcome, err := service.Return(context.Background(), lateReservation(start))

	require.NoError(t, err)
	assert.Equal(t, int64(42), outcome.FineID)
	assert.Equal(t, 3, outcome.OverdueDays)
	assert.Equal(t, 7.50, outcome.Fee)

	require.Len(t, fake.createdFines, 1)
	fine := fake.createdFines[0]
	assert.Equal(t, int64(3), fine.PersonID)
	require.NotNil(t, fine.ReservationID)
	assert.Equal(t, int64(7), *fine.ReservationID)
	assert.Equal(t, 7.50, fine.Amount)
	assert.Equal(t, "Atraso de 3 dia(s)", fine.Description)
	assert.False(t, fine.Paid)

	assert.Equal(t, []int64{7}, fake.closed)
	assert.Empty(t, fake.deletedFines)
}

func TestReturnOnTimeCreatesNoFine(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeReturnAPI{nextFineID: 42}
	service := newTestService(fake, start.AddDate(0, 0, 5))

	outcome, err := service.Return(context.Background(), lateReservation(start))

	require.NoError(t, err)
	assert.Zero(t, outcome.FineID)
	assert.Empty(t, fake.createdFines)
	assert.Equal(t, []int64{7}, fake.closed)
}

func TestReturnMissingPersonMakesNoRemoteCalls(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeReturnAPI{nextFineID: 42}
	service := newTestService(fake, start.AddDate(0, 0, 10))

	reservation := lateReservation(start)
	reservation.Person = nil

	_, err := service.Return(context.Background(), reservation)

	assert.ErrorIs(t, err, ErrMissingPerson)
	assert.Empty(t, fake.createdFines)
	assert.Empty(t, fake.closed)
	assert.Empty(t, fake.deletedFines)
}

func TestReturnRollsBackFineWhenCloseFails(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	closeErr := &api.Error{Status: 500}
	fake := &fakeReturnAPI{nextFineID: 42, closeErr: closeErr}
	service := newTestService(fake, start.AddDate(0, 0, 10))

	_, err := service.Return(context.Background(), lateReservation(start))

	require.Error(t, err)
	assert.Equal(t, closeErr, err)
	assert.Equal(t, []int64{42}, fake.deletedFines)
}

func TestReturnSwallowsCompensationError(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	closeErr := &api.Error{Status: 500}
	fake := &fakeReturnAPI{
		nextFineID: 42,
		closeErr:   closeErr,
		deleteErr:  &api.Error{Status: 404},
	}
	service := newTestService(fake, start.AddDate(0, 0, 10))

	_, err := service.Return(context.Background(), lateReservation(start))

	// The close error is the one surfaced, never the delete error.
	require.Error(t, err)
	assert.Equal(t, closeErr, err)
	assert.Equal(t, []int64{42}, fake.deletedFines)
}

func TestReturnFailedFineCreationStopsTheSaga(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeReturnAPI{createErr: &api.Error{Status: 500}}
	service := newTestService(fake, start.AddDate(0, 0, 10))

	_, err := service.Return(context.Background(), lateReservation(start))

	require.Error(t, err)
	assert.Empty(t, fake.closed)
	assert.Empty(t, fake.deletedFines)
}

func TestReturnTwiceFailsSecondCloseWithoutSecondFine(t *testing.T) {
	start := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	fake := &fakeReturnAPI{nextFineID: 42}
	service := newTestService(fake, start.AddDate(0, 0, 5))

	reservation := lateReservation(start)

	_, err := service.Return(context.Background(), reservation)
	require.NoError(t, err)

	// Server side the reservation is closed now; a replay bounces.
	fake.closeErr = &api.Error{Status: 409}

	_, err = service.Return(context.Background(), reservation)

	assert.True(t, api.IsConflict(err))
	assert.Empty(t, fake.createdFines)
	assert.Equal(t, []int64{7}, fake.closed)
}
