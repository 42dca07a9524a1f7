package tour

import (
	"context"
	"fmt"
	"io"

	"go.llib.dev/langtour/internal/catalog"
	"go.llib.dev/langtour/internal/person"
)

// Traits prints one person through its String and GoString implementations.
func (t Tour) Traits(ctx context.Context, w io.Writer) error {
	p := person.New("Megan", 28)
	_, err := fmt.Fprintf(w, "%v\n%#v\n", p, p)
	return err
}

// Enumerate prints people with their zero-based index.
func (t Tour) Enumerate(ctx context.Context, w io.Writer) error {
	people := []person.Person{person.New("James", 33), person.New("Salima", 31)}
	for i, p := range people {
		if _, err := fmt.Fprintf(w, "Person %d: %v\n", i, p); err != nil {
			return err
		}
	}
	return nil
}

// Zip pairs names with ages by position.
func (t Tour) Zip(ctx context.Context, w io.Writer) error {
	names := []string{"Alice", "Charlie"}
	ages := []uint8{24, 45}
	var people person.People
	for name, age := range Zip(names, ages) {
		people = append(people, person.New(name, age))
	}
	_, err := fmt.Fprintf(w, "%#v\n", people)
	return err
}

// Tuple unpacks a fixed size group of ages, then reads one element by position.
func (t Tour) Tuple(ctx context.Context, w io.Writer) error {
	sortedAges := AgeTriple{18, 41, 65}
	youngest, _, oldest := sortedAges.Unpack()
	if _, err := fmt.Fprintf(w, "Youngest age: %d, oldest age: %d\n", youngest, oldest); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Middle age: %d\n", sortedAges[1])
	return err
}

// Closures sorts people with an age key function and reports the youngest.
func (t Tour) Closures(ctx context.Context, w io.Writer) error {
	return youngestPerson(w, []person.Person{person.New("Aiko", 41), person.New("Rohan", 18)})
}

func youngestPerson(w io.Writer, people []person.Person) error {
	youngest, err := person.Youngest(people)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s is the youngest person at %d years old\n", youngest.Name, youngest.Age)
	return err
}

// IfElse prints a per-person boolean computed from the approximate birth year.
func (t Tour) IfElse(ctx context.Context, w io.Writer) error {
	people := []person.Person{person.New("Josephine", 20), person.New("Wesley", 31)}
	for _, p := range people {
		bornInLeapYear := person.BornInLeapYear(t.clock(), p)
		if _, err := fmt.Fprintf(w, "%v. Born in a leap year?: %t\n", p, bornInLeapYear); err != nil {
			return err
		}
	}
	return nil
}

const bornAfterYear = 1995

// FilterMap keeps the people born after 1995 and prints their name and age pairs.
func (t Tour) FilterMap(ctx context.Context, w io.Writer) error {
	people := []person.Person{person.New("Issa", 39), person.New("Ibrahim", 26)}
	result := person.BornAfter(t.clock(), people, bornAfterYear)
	_, err := fmt.Fprintf(w, "Persons born after %d: %#v\n", bornAfterYear, result)
	return err
}

// HashMap looks up a processor by key, then searches for one by value.
// The printed order of the whole map is unspecified.
func (t Tour) HashMap(ctx context.Context, w io.Writer) error {
	processors, err := t.catalog().NewMap(ctx, "processors")
	if err != nil {
		return err
	}
	if err := catalog.Fill(ctx, processors, catalog.Processors...); err != nil {
		return err
	}

	all, err := catalog.FormatMap(ctx, processors)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "All processors %s\n", all); err != nil {
		return err
	}

	model, ok, err := processors.Lookup(ctx, "13600K")
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Processor 13600K information by key: %s\n", optional(model, ok)); err != nil {
		return err
	}

	e, ok, err := catalog.FindByValue(ctx, processors, "amd ryzen 3")
	if err != nil {
		return err
	}
	if ok {
		_, err = fmt.Fprintf(w, "Processor AMD Ryzen 3 information by value: %s: %s\n", e.Key, e.Value)
	}
	return err
}

// HashSet searches a set of processor models for a case-insensitive match.
// The printed order of the whole set is unspecified.
func (t Tour) HashSet(ctx context.Context, w io.Writer) error {
	processors, err := t.catalog().NewSet(ctx, "processors")
	if err != nil {
		return err
	}
	if err := catalog.FillSet(ctx, processors, catalog.ProcessorModels...); err != nil {
		return err
	}

	all, err := catalog.FormatSet(ctx, processors)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, all); err != nil {
		return err
	}

	model, ok, err := catalog.FindMember(ctx, processors, "amd ryzen 3")
	if err != nil {
		return err
	}
	if ok {
		_, err = fmt.Fprintf(w, "%q\n", model)
	}
	return err
}

func optional(v string, ok bool) string {
	if !ok {
		return "None"
	}
	return fmt.Sprintf("Some(%q)", v)
}
