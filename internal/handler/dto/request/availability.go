package request

import (
	"time"

	"condo-reserve/internal/pkg/errs"
	"condo-reserve/internal/pkg/timex"
	"condo-reserve/internal/usecase/queries"
)

// AvailabilityQuery binds the two accepted window shapes: a start date plus
// a day count, or an explicit from/to instant pair.
type AvailabilityQuery struct {
	Start string `form:"start"`
	Days  int    `form:"days"`
	From  string `form:"from"`
	To    string `form:"to"`
}

func (q AvailabilityQuery) ToWindow() (queries.Window, error) {
	if q.From != "" || q.To != "" {
		if q.Start != "" || q.Days != 0 {
			return queries.Window{}, errs.Mark(errs.New("use either start/days or from/to, not both"), errs.ErrValidation)
		}
		from, err := time.Parse(time.RFC3339, q.From)
		if err != nil {
			return queries.Window{}, errs.Mark(errs.Wrap(err, "invalid from instant"), errs.ErrValidation)
		}
		to, err := time.Parse(time.RFC3339, q.To)
		if err != nil {
			return queries.Window{}, errs.Mark(errs.Wrap(err, "invalid to instant"), errs.ErrValidation)
		}
		return queries.Window{From: &from, To: &to}, nil
	}

	if q.Start == "" {
		return queries.Window{}, errs.Mark(errs.New("start date is required"), errs.ErrValidation)
	}
	start, err := timex.ParseDate(q.Start)
	if err != nil {
		return queries.Window{}, errs.Mark(err, errs.ErrValidation)
	}
	days := q.Days
	if days == 0 {
		days = 7
	}
	if days < 0 || days > queries.MaxWindowDays {
		return queries.Window{}, errs.Mark(errs.New("days out of range"), errs.ErrValidation)
	}
	return queries.Window{StartDate: &start, Days: days}, nil
}
