package library

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/raccoonbooks/biblio-cli/internal/model"
	"go.uber.org/zap"
)

const (
	// LoanPeriodDays is the fixed loan period before a return is late.
	LoanPeriodDays = 7
	// DailyFineRate is charged per overdue day, in currency units.
	DailyFineRate = 2.5
)

// ErrMissingPerson means the reservation carries no person reference,
// so there is nobody to charge. Nothing is written remotely.
var ErrMissingPerson = errors.New("reservation has no person attached")

// Assessment is the late-fee computation for one return.
type Assessment struct {
	OverdueDays int
	Fee         float64
	DueDate     time.Time
}

// Assess computes overdue days against the fixed loan period. A nil
// start counts as "now", i.e. zero elapsed time. Partial days round up,
// and the fee is rounded to two decimal places.
func Assess(start *time.Time, now time.Time) Assessment {
	begun := now
	if start != nil {
		begun = *start
	}

	dueDate := begun.AddDate(0, 0, LoanPeriodDays)

	overdueDays := 0
	if late := now.Sub(dueDate); late > 0 {
		overdueDays = int(math.Ceil(late.Hours() / 24))
	}

	fee := math.Round(float64(overdueDays)*DailyFineRate*100) / 100

	return Assessment{OverdueDays: overdueDays, Fee: fee, DueDate: dueDate}
}

// ReturnAPI is the slice of the remote API the return workflow needs.
type ReturnAPI interface {
	CreateFine(ctx context.Context, req model.FineRequest) (model.Fine, error)
	DeleteFine(ctx context.Context, id int64) error
	ReturnReservation(ctx context.Context, id int64) error
}

// ReturnOutcome reports what a successful return did. FineID is zero
// when the return was on time and no fine record exists.
type ReturnOutcome struct {
	Assessment
	FineID int64
}

// ReturnService closes reservations: fine first, then close, and the
// fine is deleted again if the close fails. The two remote writes are
// strictly sequential so the compensation always knows the fine ID.
type ReturnService struct {
	api ReturnAPI
	log *zap.Logger
	now func() time.Time
}

func NewReturnService(api ReturnAPI, log *zap.Logger) *ReturnService {
	return &ReturnService{api: api, log: log, now: time.Now}
}

// Return runs the close-with-fine saga for one open reservation. Not
// idempotent: a second call for the same reservation fails at the close
// step, and the (already zero-day) overdue period creates no new fine.
func (s *ReturnService) Return(ctx context.Context, reservation model.Reservation) (ReturnOutcome, error) {
	if reservation.Person == nil || reservation.Person.ID == 0 {
		return ReturnOutcome{}, ErrMissingPerson
	}

	now := s.now()
	assessment := Assess(reservation.StartDate, now)
	outcome := ReturnOutcome{Assessment: assessment}

	var fineID int64
	if assessment.OverdueDays > 0 && assessment.Fee > 0 {
		reservationID := reservation.ID
		fine, err := s.api.CreateFine(ctx, model.FineRequest{
			PersonID:      reservation.Person.ID,
			ReservationID: &reservationID,
			Amount:        assessment.Fee,
			Description:   fmt.Sprintf("Atraso de %d dia(s)", assessment.OverdueDays),
			IssuedAt:      now,
			Paid:          false,
		})
		if err != nil {
			return outcome, fmt.Errorf("failed to create fine: %w", err)
		}
		fineID = fine.ID
		s.log.Debug("fine created ahead of return",
			zap.Int64("fine_id", fineID),
			zap.Int64("reservation_id", reservation.ID),
			zap.Float64("amount", assessment.Fee))
	}

	if err := s.api.ReturnReservation(ctx, reservation.ID); err != nil {
		if fineID != 0 {
			// Best effort: the close error is the one the caller gets.
			if deleteErr := s.api.DeleteFine(ctx, fineID); deleteErr != nil {
				s.log.Warn("orphaned fine left behind, compensation failed",
					zap.Int64("fine_id", fineID),
					zap.Int64("reservation_id", reservation.ID),
					zap.Error(deleteErr))
			}
		}
		return outcome, err
	}

	outcome.FineID = fineID
	return outcome, nil
}
