// Package daterange completes partially specified date ranges for
// time-bounded queries.
//
// A missing bound is derived from the other one using a fixed 31-day
// window, and the end of the window may never be more than one day after
// today. The one day tolerance absorbs clock skew between the caller and the
// API; it does not make windows longer.
package daterange

import (
	"time"

	"tmoapi/internal/api"
	"tmoapi/pkg/logging"
)

// Layout is the textual date format used for all date parameters.
const Layout = "01/02/2006"

// LayoutHint is Layout as shown to users.
const LayoutHint = "MM/DD/YYYY"

// WindowDays is the length of a derived window.
const WindowDays = 31

// futureTolerance is how far past today an end date may lie.
const futureTolerance = 24 * time.Hour

// Window is a validated calendar date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// StartString returns the start date in Layout.
func (w Window) StartString() string {
	return w.Start.Format(Layout)
}

// EndString returns the end date in Layout.
func (w Window) EndString() string {
	return w.End.Format(Layout)
}

// Days returns the number of days between start and end.
func (w Window) Days() int {
	return int(w.End.Sub(w.Start).Hours() / 24)
}

// Normalizer fills in missing window bounds relative to "today".
type Normalizer struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewNormalizer creates a Normalizer using the system clock.
func NewNormalizer() *Normalizer {
	return &Normalizer{Now: time.Now}
}

// Normalize returns the complete window for the given bounds. Empty strings
// mean the bound was not supplied:
//
//	start  end   result
//	-      -     today-31d .. today
//	-      yes   end-31d .. end
//	yes    -     start .. start+31d, clamped to today
//	yes    yes   start .. end
//
// It fails with a validation error when a date does not match Layout or the
// end date lies more than one day after today.
func (n *Normalizer) Normalize(start, end string) (Window, error) {
	today := n.today()
	limit := today.Add(futureTolerance)

	switch {
	case start == "" && end == "":
		return Window{Start: today.AddDate(0, 0, -WindowDays), End: today}, nil

	case start == "":
		e, err := parseDate(end, "End")
		if err != nil {
			return Window{}, err
		}
		if e.After(limit) {
			return Window{}, endTooLate(today)
		}
		return Window{Start: e.AddDate(0, 0, -WindowDays), End: e}, nil

	case end == "":
		s, err := parseDate(start, "Start")
		if err != nil {
			return Window{}, err
		}
		e := s.AddDate(0, 0, WindowDays)
		if e.After(limit) {
			logging.Debug("DateRange", "Derived end date %s is in the future, using today", e.Format(Layout))
			e = today
		}
		return Window{Start: s, End: e}, nil

	default:
		s, err := parseDate(start, "Start")
		if err != nil {
			return Window{}, err
		}
		e, err := parseDate(end, "End")
		if err != nil {
			return Window{}, err
		}
		if e.After(limit) {
			return Window{}, endTooLate(today)
		}
		return Window{Start: s, End: e}, nil
	}
}

// today returns the current calendar date at midnight UTC.
func (n *Normalizer) today() time.Time {
	now := time.Now
	if n != nil && n.Now != nil {
		now = n.Now
	}
	t := now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate parses s in Layout. which names the bound in the error message.
func parseDate(s, which string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, api.Validationf("%s date must be in %s format", which, LayoutHint)
	}
	return t, nil
}

func endTooLate(today time.Time) error {
	return api.Validationf("End date cannot be later than today (%s)", today.Format(Layout))
}
