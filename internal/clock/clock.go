// Package clock abstracts the server's notion of "today" so that day-scoped
// ledger operations and rolling windows are deterministic under test.
package clock

import "time"

// DateLayout is the canonical logical-date representation.
const DateLayout = "2006-01-02"

// Clock supplies the current time and the logical calendar date.
type Clock interface {
	Now() time.Time
	Today() string
}

// System is the wall-clock implementation used in production.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Today() string { return time.Now().Format(DateLayout) }

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

func (f Fixed) Today() string { return f.T.Format(DateLayout) }

// AddDays shifts a logical date by n calendar days. The date must be in
// DateLayout form; malformed input returns the input unchanged.
func AddDays(date string, n int) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.AddDate(0, 0, n).Format(DateLayout)
}

// ValidDate reports whether s is a well-formed logical date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
