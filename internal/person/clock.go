package person

import (
	"time"

	"go.llib.dev/testcase/clock"
)

//go:generate mockgen -destination clock_mocks_test.go -source clock.go -package person_test

// Clock is the single source of "now" for everything that derives values from the current date.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
// It goes through testcase/clock, so tests can freeze or travel in time with timecop.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return clock.Now() }

// FixedYear is a Clock that is always at the first moment of the given year.
type FixedYear int

func (y FixedYear) Now() time.Time {
	return time.Date(int(y), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// ApproxYearOfBirth subtracts the age from the current calendar year.
// Month and day are ignored, so the result can be off by one.
func ApproxYearOfBirth(c Clock, p Person) int {
	return c.Now().Year() - int(p.Age)
}

// IsLeapYear uses the simplified every-fourth-year rule,
// without the century and 400-year exceptions.
func IsLeapYear(year int) bool {
	return year%4 == 0
}

func BornInLeapYear(c Clock, p Person) bool {
	return IsLeapYear(ApproxYearOfBirth(c, p))
}
