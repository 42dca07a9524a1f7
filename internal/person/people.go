package person

import (
	"cmp"
	"slices"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

const ErrNoPeople errorkit.Error = "ErrNoPeople"

// SortByAge returns an ascending copy of ps.
// People with the same age keep their original relative order.
func SortByAge(ps []Person) []Person {
	sorted := slicekit.Clone(ps)
	slices.SortStableFunc(sorted, func(a, b Person) int {
		return cmp.Compare(a.Age, b.Age)
	})
	return sorted
}

// Youngest returns the first person of the age ordering.
func Youngest(ps []Person) (Person, error) {
	if len(ps) == 0 {
		return Person{}, ErrNoPeople
	}
	return SortByAge(ps)[0], nil
}

// BornAfter keeps the people whose approximate birth year is strictly after year,
// and projects them into name/age pairs in their input order.
func BornAfter(c Clock, ps []Person, year int) NameAges {
	bornAfter := iterkit.Filter(iterkit.FromSlice(ps), func(p Person) bool {
		return year < ApproxYearOfBirth(c, p)
	})
	pairs := iterkit.Map(bornAfter, func(p Person) NameAge {
		return NameAge{Name: p.Name, Age: p.Age}
	})
	return iterkit.Collect(pairs)
}
