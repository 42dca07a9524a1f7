// Package person holds the Person entity used across the tour,
// together with the few derived values the demos compute from it.
package person

import (
	"fmt"
	"strings"

	"go.llib.dev/frameless/pkg/slicekit"
)

type Person struct {
	Name string
	Age  uint8
}

func New(name string, age uint8) Person {
	return Person{Name: name, Age: age}
}

// String returns the friendly form, which is what %v and %s print.
func (p Person) String() string {
	return fmt.Sprintf("%s is %d years old", p.Name, p.Age)
}

// GoString returns the debug form, which is what %#v prints.
func (p Person) GoString() string {
	return fmt.Sprintf("Person: %s, %d", p.Name, p.Age)
}

// People renders its elements in debug form when printed with %#v.
type People []Person

func (ps People) GoString() string {
	return listOf(ps, Person.GoString)
}

// NameAge is the (name, age) projection of a Person.
type NameAge struct {
	Name string
	Age  uint8
}

func (na NameAge) GoString() string {
	return fmt.Sprintf("(%q, %d)", na.Name, na.Age)
}

type NameAges []NameAge

func (nas NameAges) GoString() string {
	return listOf(nas, NameAge.GoString)
}

func listOf[T any](vs []T, format func(T) string) string {
	return "[" + strings.Join(slicekit.Map(vs, format), ", ") + "]"
}
